package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	keyword string
	writes  int
}

func (a *stubAdapter) Keyword() string { return a.keyword }

func (a *stubAdapter) Write(artifact interface{}, options interface{}) error {
	a.writes++
	return nil
}

func TestRegistryResolve(t *testing.T) {
	file := &stubAdapter{keyword: "file"}
	s3 := &stubAdapter{keyword: "s3"}
	reg := NewRegistry(file, s3)

	a, err := reg.Resolve("s3")
	require.NoError(t, err)
	assert.Equal(t, s3, a)
}

func TestRegistryResolveDefault(t *testing.T) {
	file := &stubAdapter{keyword: "file"}
	reg := NewRegistry(file)

	a, err := reg.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, file, a)
}

func TestRegistryResolveUnknown(t *testing.T) {
	reg := NewRegistry(&stubAdapter{keyword: "file"})

	_, err := reg.Resolve("hdfs")
	require.Error(t, err)
	uerr, ok := err.(UnknownAdapterError)
	require.True(t, ok)
	assert.Equal(t, "hdfs", uerr.Keyword)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	first := &stubAdapter{keyword: "file"}
	second := &stubAdapter{keyword: "file"}
	reg := NewRegistry(first)
	reg.Register(second)

	a, err := reg.Resolve("file")
	require.NoError(t, err)
	assert.Equal(t, second, a)
}

func TestRegistryKeywords(t *testing.T) {
	reg := NewRegistry(&stubAdapter{keyword: "s3"}, &stubAdapter{keyword: "db"}, &stubAdapter{keyword: "file"})
	assert.Equal(t, []string{"db", "file", "s3"}, reg.Keywords())
}
