package maintenance

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

// DayParser replaces date template elements like {{.YYYYMMDD}} in file names,
// so export destinations can roll over daily.
type DayParser struct {
	timeZone *time.Location
	tmpl     tmpl
}

// tmpl used to translate templates with date info
type tmpl struct {
	YYYYMMDD string
	YYYY     string
	YYYYMM   string
	YYMMDD   string
	ISODATE  string
	MM       string
	DD       string
	YY       string
	UNIX     int64
	UNIXMSEC int64
}

// NewDayTemplate makes day parser for the given date
func NewDayTemplate(ts time.Time, options ...Option) *DayParser {
	res := &DayParser{timeZone: time.Local}
	for _, opt := range options {
		opt(res)
	}

	tsMidnight := res.toMidnight(ts)
	res.tmpl = tmpl{
		YYYYMMDD: tsMidnight.Format("20060102"),
		YYYY:     tsMidnight.Format("2006"),
		YYYYMM:   tsMidnight.Format("200601"),
		YYMMDD:   tsMidnight.Format("060102"),
		ISODATE:  tsMidnight.Format("2006-01-02T00:00:00.000Z"),
		YY:       tsMidnight.Format("06"),
		MM:       tsMidnight.Format("01"),
		DD:       tsMidnight.Format("02"),
		UNIX:     ts.Unix(),
		UNIXMSEC: ts.UnixNano() / 1000000,
	}
	return res
}

// Parse translate template to final string
func (p DayParser) Parse(dayTemplate string) (string, error) {
	tm, err := template.New("ymd").Parse(dayTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse day template %s: %w", dayTemplate, err)
	}
	b := bytes.Buffer{}
	if err := tm.Execute(&b, p.tmpl); err != nil {
		return "", fmt.Errorf("failed to parse day from %s: %w", dayTemplate, err)
	}
	return b.String(), nil
}

// toMidnight get midnight time in the parser's tz for given time
func (p DayParser) toMidnight(tm time.Time) time.Time {
	yy, mm, dd := tm.In(p.timeZone).Date()
	return time.Date(yy, mm, dd, 0, 0, 0, 0, p.timeZone)
}

// Option func type
type Option func(l *DayParser)

// TimeZone sets timezone used for all time parsings
func TimeZone(tz *time.Location) Option {
	return func(l *DayParser) {
		l.timeZone = tz
	}
}
