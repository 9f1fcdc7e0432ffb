package export

import (
	"testing"

	"github.com/kirillseva/syberiaStages/dataset"
	"github.com/kirillseva/syberiaStages/errors"
	"github.com/kirillseva/syberiaStages/model"
	"github.com/kirillseva/syberiaStages/pipeline"
	"github.com/kirillseva/syberiaStages/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	artifact interface{}
	options  interface{}
}

type fakeAdapter struct {
	keyword string
	writes  []write
	err     error
}

func (a *fakeAdapter) Keyword() string { return a.keyword }

func (a *fakeAdapter) Write(artifact interface{}, options interface{}) error {
	a.writes = append(a.writes, write{artifact, options})
	return a.err
}

type fakeModel struct{}

func (fakeModel) Predict(data *dataset.Frame) ([]float64, error) {
	return make([]float64, data.NumRows()), nil
}

func (fakeModel) BaselineSurvival() model.SurvivalCurve {
	return model.SurvivalCurve{0.99}
}

func contextWithModel() *pipeline.Context {
	return &pipeline.Context{ModelStage: pipeline.ModelStage{Model: fakeModel{}}}
}

func TestBuildOneActionPerTarget(t *testing.T) {
	file := &fakeAdapter{keyword: "file"}
	s3 := &fakeAdapter{keyword: "s3"}
	reg := storage.NewRegistry(file, s3)

	raw := map[string]interface{}{
		"s3":   "s3://bucket/model.json",
		"file": "/tmp/model.json",
	}

	actions, err := Build(reg, raw)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "Export to file", actions[0].Name)
	assert.Equal(t, "Export to s3", actions[1].Name)

	ctx := contextWithModel()
	for _, a := range actions {
		require.NoError(t, a.Run(ctx))
	}

	require.Len(t, file.writes, 1)
	assert.Equal(t, "/tmp/model.json", file.writes[0].options)
	require.Len(t, s3.writes, 1)
	assert.Equal(t, "s3://bucket/model.json", s3.writes[0].options)
}

func TestBuildScalarEquivalentToDefaultMapping(t *testing.T) {
	file := &fakeAdapter{keyword: "file"}
	reg := storage.NewRegistry(file)

	scalar, err := Build(reg, "/tmp/model.json")
	require.NoError(t, err)

	mapped, err := Build(reg, map[string]interface{}{"file": "/tmp/model.json"})
	require.NoError(t, err)

	require.Len(t, scalar, 1)
	require.Len(t, mapped, 1)
	assert.Equal(t, mapped[0].Name, scalar[0].Name)

	ctx := contextWithModel()
	require.NoError(t, scalar[0].Run(ctx))
	require.NoError(t, mapped[0].Run(ctx))
	require.Len(t, file.writes, 2)
	assert.Equal(t, file.writes[0], file.writes[1])
}

func TestBuildUnknownAdapterFailsWhole(t *testing.T) {
	file := &fakeAdapter{keyword: "file"}
	reg := storage.NewRegistry(file)

	raw := map[string]interface{}{
		"file": "/tmp/model.json",
		"hdfs": "hdfs://namenode/model",
	}

	actions, err := Build(reg, raw)
	require.Error(t, err)
	assert.Nil(t, actions)

	uerr, ok := err.(storage.UnknownAdapterError)
	require.True(t, ok)
	assert.Equal(t, "hdfs", uerr.Keyword)

	// no partial execution: nothing was written
	assert.Empty(t, file.writes)
}

func TestBuildTargetOrderPreserved(t *testing.T) {
	a := &fakeAdapter{keyword: "a"}
	b := &fakeAdapter{keyword: "b"}
	reg := storage.NewRegistry(a, b)

	actions, err := Build(reg, []Target{
		{Keyword: "b", Options: 1},
		{Keyword: "a", Options: 2},
	})
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "Export to b", actions[0].Name)
	assert.Equal(t, "Export to a", actions[1].Name)
}

func TestExportActionWrapsWriteError(t *testing.T) {
	bad := &fakeAdapter{keyword: "file", err: errors.New("disk full")}
	reg := storage.NewRegistry(bad)

	actions, err := Build(reg, "/tmp/model.json")
	require.NoError(t, err)

	err = actions[0].Run(contextWithModel())
	require.Error(t, err)

	werr, ok := err.(storage.WriteError)
	require.True(t, ok)
	assert.Equal(t, "file", werr.Keyword)
	assert.Equal(t, "disk full", werr.Unwrap().Error())
}

func TestExportActionRequiresModel(t *testing.T) {
	reg := storage.NewRegistry(&fakeAdapter{keyword: "file"})

	actions, err := Build(reg, "/tmp/model.json")
	require.NoError(t, err)

	err = actions[0].Run(&pipeline.Context{})
	require.Error(t, err)
	_, ok := err.(pipeline.ConfigError)
	assert.True(t, ok)
}

func TestNormalizeOptionsEmpty(t *testing.T) {
	for _, raw := range []interface{}{nil, map[string]interface{}{}, []Target{}} {
		_, err := NormalizeOptions(raw)
		assert.Error(t, err)
	}
}

func TestFailingAdapterDoesNotAbortBatch(t *testing.T) {
	bad := &fakeAdapter{keyword: "s3", err: errors.New("forbidden")}
	good := &fakeAdapter{keyword: "file"}
	reg := storage.NewRegistry(bad, good)

	actions, err := Build(reg, []Target{
		{Keyword: "s3", Options: "s3://bucket/model.json"},
		{Keyword: "file", Options: "/tmp/model.json"},
	})
	require.NoError(t, err)

	runner := pipeline.NewRunner(pipeline.RunnerOpts{ContinueOnError: true})
	err = runner.Run(contextWithModel(), actions)
	require.Error(t, err)

	// the good adapter still ran, and the failure is reported per-adapter
	require.Len(t, good.writes, 1)
	errs, ok := err.(errors.Errors)
	require.True(t, ok)
	assert.Equal(t, 1, errs.Len())
	assert.Contains(t, errs.Error(), "adapter s3")
}
