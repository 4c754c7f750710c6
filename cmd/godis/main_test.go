package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronwong1989/godis/comm/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Setenv(config.EnvConfPath, "")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSampleThenDecode(t *testing.T) {
	for _, kind := range sampleKinds() {
		out, err := run(t, "sample", kind)
		require.NoError(t, err, kind)
		dump := strings.TrimSpace(out)
		t.Logf("%s: %s", kind, dump)

		decoded, err := run(t, "decode", dump)
		require.NoError(t, err, kind)
		assert.Equal(t, 1, strings.Count(decoded, "Header:"), kind)
	}
}

func TestSample_ElasticLength(t *testing.T) {
	out, err := run(t, "sample", "collision-elastic", "-n", "2")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 2)
	// 100字节，版本 7，类型 66，协议族 1，声明长度 0x0064
	assert.Len(t, lines[0], 200)
	assert.True(t, strings.HasPrefix(lines[0], "07014201"), lines[0])
	assert.Equal(t, "0064", lines[0][16:20])
	assert.NotEqual(t, lines[0][48:60], lines[1][48:60], "each sample gets a new event id")

	decoded, err := run(t, "decode", lines[0]+lines[1])
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(decoded, "CollisionElastic"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "decode", "zz")
	assert.Error(t, err)

	_, err = run(t, "decode", "07 01 42 01")
	assert.Error(t, err)

	_, err = run(t, "sample", "entity-state")
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	data, err := parseHex("0x07:01 42\n01")
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 1, 0x42, 1}, data)
}
