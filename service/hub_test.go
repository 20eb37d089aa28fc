package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fake struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	log      *[]string
	args     []any
}

func (f *fake) Name() string           { return f.name }
func (f *fake) Dependencies() []string { return f.deps }

func (f *fake) Init(args ...any) error {
	f.args = args
	*f.log = append(*f.log, "init "+f.name)
	return f.initErr
}

func (f *fake) Start() error {
	*f.log = append(*f.log, "start "+f.name)
	return f.startErr
}

func (f *fake) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return nil
}

func TestHubOrdersByDependency(t *testing.T) {
	var log []string
	h := NewHub(nil)
	spectate := &fake{name: "spectate", deps: []string{"status"}, log: &log}
	require.NoError(t, h.Register(spectate))
	require.NoError(t, h.Register(&fake{name: "status", log: &log}))
	require.NoError(t, h.Register(&fake{name: "audio", log: &log}))

	require.NoError(t, h.InitAll("cfg"))
	assert.Equal(t, []string{"audio", "status", "spectate"}, h.Order())
	assert.Equal(t, []any{"cfg"}, spectate.args)

	require.NoError(t, h.StartAll())
	h.StopAll()
	h.StopAll()
	assert.Equal(t, []string{
		"init audio", "init status", "init spectate",
		"start audio", "start status", "start spectate",
		"stop spectate", "stop status", "stop audio",
	}, log)
}

func TestHubRejectsDuplicates(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fake{name: "audio", log: &log}))
	assert.Error(t, h.Register(&fake{name: "audio", log: &log}))
}

func TestHubDependencyErrors(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fake{name: "a", deps: []string{"b"}, log: &log}))
	require.NoError(t, h.Register(&fake{name: "b", deps: []string{"a"}, log: &log}))
	assert.ErrorIs(t, h.InitAll(), ErrCircular)

	h = NewHub(nil)
	require.NoError(t, h.Register(&fake{name: "a", deps: []string{"missing"}, log: &log}))
	assert.ErrorContains(t, h.InitAll(), "missing")
}

func TestHubRollsBack(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fake{name: "a", log: &log}))
	require.NoError(t, h.Register(&fake{name: "b", deps: []string{"a"}, startErr: errors.New("no device"), log: &log}))

	require.NoError(t, h.InitAll())
	err := h.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no device")
	assert.Equal(t, []string{"init a", "init b", "start a", "start b", "stop a"}, log)

	log = log[:0]
	h.StopAll()
	assert.Empty(t, log)
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fake{name: "a", log: &log}))
	require.NoError(t, h.Register(&fake{name: "b", deps: []string{"a"}, initErr: errors.New("bad"), log: &log}))

	assert.Error(t, h.InitAll())
	assert.Equal(t, []string{"init a", "init b", "stop a"}, log)
}
