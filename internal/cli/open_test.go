package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	s, err := parseState([]string{"2", "-1", "1", "0", "0"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.J())
	assert.Equal(t, -1, s.Ka())
	assert.Equal(t, 1, s.Kc())

	_, err = parseState([]string{"1", "0", "1"})
	assert.Error(t, err)

	_, err = parseState([]string{"1", "0", "1", "x", "0"})
	assert.Error(t, err)
}

func TestStoreOptionsRejectsUnknownCodec(t *testing.T) {
	viper.Set("codec", "snappy")
	defer viper.Set("codec", "")

	_, err := storeOptions(false)
	assert.Error(t, err)
}

func TestStorePathRequired(t *testing.T) {
	viper.Set("store", "")
	_, err := storePath()
	assert.Error(t, err)

	viper.Set("store", "/tmp/ocs.stark")
	defer viper.Set("store", "")
	path, err := storePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ocs.stark", path)
}
