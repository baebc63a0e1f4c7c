package nodedesc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disco/nodedesc"
)

func TestEncoderDecoder_Primitives(t *testing.T) {
	e := nodedesc.NewEncoder(0)
	e.WriteInt(-42)
	e.WriteFloat(1.5)
	e.WriteFlag(true)
	e.WriteBytes([]byte("xy"))
	e.WriteFlag(false)
	require.Equal(t, 8+8+1+4+2+1, e.Len())

	d := nodedesc.NewDecoder(e.Bytes())
	i, err := d.ReadInt()
	require.NoError(t, err)
	require.Equal(t, -42, i)

	f, err := d.ReadFloat()
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	flag, err := d.ReadFlag()
	require.NoError(t, err)
	require.True(t, flag)

	p, err := d.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("xy"), p)

	flag, err = d.ReadFlag()
	require.NoError(t, err)
	require.False(t, flag)

	require.Zero(t, d.Remaining())
	_, err = d.ReadInt()
	require.ErrorIs(t, err, nodedesc.ErrTruncated)
}

func TestDecoder_ReadBytesTruncated(t *testing.T) {
	e := nodedesc.NewEncoder(0)
	e.WriteBytes([]byte("abcdef"))
	b := e.Bytes()

	_, err := nodedesc.NewDecoder(b[:len(b)-1]).ReadBytes()
	require.ErrorIs(t, err, nodedesc.ErrTruncated)
}
