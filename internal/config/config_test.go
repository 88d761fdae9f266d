package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_DefaultIsList(t *testing.T) {
	cfg, err := ParseArgs([]string{"procsnap"})

	require.NoError(t, err)
	assert.Equal(t, CmdList, cfg.Command)
	assert.Empty(t, cfg.FilterExpr)
	assert.False(t, cfg.Trace)
}

func TestParseArgs_ExplicitList(t *testing.T) {
	cfg, err := ParseArgs([]string{"procsnap", "list"})

	require.NoError(t, err)
	assert.Equal(t, CmdList, cfg.Command)
}

func TestParseArgs_ArgsWithPid(t *testing.T) {
	cfg, err := ParseArgs([]string{"procsnap", "args", "1234"})

	require.NoError(t, err)
	assert.Equal(t, CmdArgs, cfg.Command)
	assert.Equal(t, int32(1234), cfg.Pid)
}

func TestParseArgs_AliveWithNegativePid(t *testing.T) {
	// Negative pids are accepted here; the library reports them not alive
	// without touching the kernel.
	cfg, err := ParseArgs([]string{"procsnap", "alive", "-5"})

	require.NoError(t, err)
	assert.Equal(t, CmdAlive, cfg.Command)
	assert.Equal(t, int32(-5), cfg.Pid)
}

func TestParseArgs_ArgsMissingPid(t *testing.T) {
	_, err := ParseArgs([]string{"procsnap", "args"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a pid")
}

func TestParseArgs_BadPid(t *testing.T) {
	_, err := ParseArgs([]string{"procsnap", "args", "banana"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pid")
}

func TestParseArgs_Filter(t *testing.T) {
	cfg, err := ParseArgs([]string{"procsnap", "-f", `comm == "sshd"`, "list"})

	require.NoError(t, err)
	assert.Equal(t, `comm == "sshd"`, cfg.FilterExpr)
}

func TestParseArgs_FilterMissingValue(t *testing.T) {
	_, err := ParseArgs([]string{"procsnap", "--filter"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a value")
}

func TestParseArgs_Trace(t *testing.T) {
	cfg, err := ParseArgs([]string{"procsnap", "--trace"})

	require.NoError(t, err)
	assert.True(t, cfg.Trace)
}

func TestParseArgs_Version(t *testing.T) {
	cfg, err := ParseArgs([]string{"procsnap", "-v"})

	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestParseArgs_UnknownCommand(t *testing.T) {
	_, err := ParseArgs([]string{"procsnap", "explode"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestOTELConfig_EndpointPriority(t *testing.T) {
	c := &OTELConfig{}
	assert.Equal(t, "localhost:4318", c.GetEndpoint())

	c.ExporterEndpoint = "collector:4318"
	assert.Equal(t, "collector:4318", c.GetEndpoint())

	c.TracesEndpoint = "traces:4318"
	assert.Equal(t, "traces:4318", c.GetEndpoint())
}

func TestOTELConfig_ParseResourceAttributes(t *testing.T) {
	c := &OTELConfig{ResourceAttributes: "host=bsd1, role =edge,malformed"}

	attrs := c.ParseResourceAttributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "host", string(attrs[0].Key))
	assert.Equal(t, "bsd1", attrs[0].Value.AsString())
	assert.Equal(t, "role", string(attrs[1].Key))
	assert.Equal(t, "edge", attrs[1].Value.AsString())
}
