package cmd

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGenerateCmd(t *testing.T) {
	cmd := getGenerateCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "generate", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("models"))
	assert.NotNil(t, cmd.Flags().Lookup("type"))
	assert.Nil(t, cmd.Flags().Lookup("output"))
}

func TestGenerate(t *testing.T) {
	setupTest(t)
	tests := []struct {
		msg  string
		args []string
		code gn.ErrorCode
	}{
		{"not implemented", []string{"-m", "book.v1.parmodel.json", "10"},
			errcode.NotImplementedError},
		{"no models", []string{"10"}, errcode.NoModelsError},
		{"csv", []string{"-t", "csv", "-m", "book.v1.parmodel.json", "10"},
			errcode.UnsupportedDataTypeError},
		{"upper case type", []string{"-t", " XML ", "-m", "book.v1.parmodel.json", "10"},
			errcode.NotImplementedError},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			err := execute(getGenerateCmd(), v.args...)
			assert.Equal(t, v.code, errCode(t, err))
		})
	}

	err := execute(getGenerateCmd())
	assert.Error(t, err)
}
