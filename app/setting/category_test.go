package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Parse(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := Parse("colours")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestCategory_FileName(t *testing.T) {
	assert.Equal(t, "config.json", Config.FileName("race"))
	assert.Equal(t, "race.json", Setting.FileName("race"))
	assert.Equal(t, "classes.json", Classes.FileName("race"))
	assert.Equal(t, "compounds.json", Compounds.FileName(""))
}

func TestCategory_StyleSplit(t *testing.T) {
	assert.False(t, Config.IsStyle())
	assert.False(t, Setting.IsStyle())
	assert.Equal(t, []string{"classes.json", "heatmap.json", "brands.json", "brakes.json", "compounds.json"},
		StyleFileNames())
}

func TestDefaults_CoverEveryCategory(t *testing.T) {
	for _, c := range All() {
		d := defaultsFor(c)
		assert.NotNil(t, d, "defaults for %s", c)
	}
	assert.NotEmpty(t, DefaultConfig()["application"])
	assert.NotEmpty(t, DefaultSetting()["overlay"])
	assert.NotEmpty(t, DefaultHeatmap()["tyre_default"])
}
