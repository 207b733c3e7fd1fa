package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/0xalexb/dotaccess"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func supplyDoc(name string, doc *dotaccess.Data) fx.Option {
	return fx.Supply(fx.Annotate(doc, fx.ResultTags(`name:"`+name+`"`)))
}

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	addr := freePort(t)

	app := fxtest.New(t,
		supplyDoc("settings", dotaccess.New(map[string]any{"a": map[string]any{"b": "B"}})),
		NewModule("settings", WithAddress(addr)),
	)

	app.RequireStart()

	status, body := fetch(t, "http://"+addr+"/a/b")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `"B"`, body)

	app.RequireStop()
}

func TestNewModule_WithExternalConfig(t *testing.T) {
	t.Parallel()

	addr := freePort(t)

	app := fxtest.New(t,
		supplyDoc("flags", dotaccess.New(map[string]any{"on": true})),
		fx.Supply(fx.Annotate(Config{Address: addr, ReadOnly: true}, fx.ResultTags(`name:"flags"`))),
		NewModule("flags"),
	)

	app.RequireStart()

	status, body := fetch(t, "http://"+addr+"/on")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "true", body)

	app.RequireStop()
}

func TestNewModule_TwoDocuments(t *testing.T) {
	t.Parallel()

	addr1 := freePort(t)
	addr2 := freePort(t)

	app := fxtest.New(t,
		supplyDoc("first", dotaccess.New(map[string]any{"name": "first"})),
		supplyDoc("second", dotaccess.New(map[string]any{"name": "second"})),
		NewModule("first", WithAddress(addr1)),
		NewModule("second", WithAddress(addr2)),
	)

	app.RequireStart()

	_, body1 := fetch(t, "http://"+addr1+"/name")
	assert.Equal(t, `"first"`, body1)

	_, body2 := fetch(t, "http://"+addr2+"/name")
	assert.Equal(t, `"second"`, body2)

	app.RequireStop()
}

func TestNewModule_ListenFailure(t *testing.T) {
	t.Parallel()

	addr := freePort(t)

	blocker, err := NewServer("blocker", dotaccess.New(nil), Config{Address: addr}, nil)
	require.NoError(t, err)
	require.NoError(t, blocker.Start(context.Background()))

	defer func() { _ = blocker.Stop(context.Background()) }()

	app := fx.New(
		supplyDoc("fail", dotaccess.New(nil)),
		NewModule("fail", WithAddress(addr)),
		fx.NopLogger,
	)

	err = app.Start(context.Background())
	assert.Error(t, err, "should fail when port is already in use")
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(
		NewModule(""),
		fx.NopLogger,
	)

	err := app.Err()
	require.ErrorIs(t, err, ErrEmptyName)
}
