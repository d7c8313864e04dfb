package service

import (
	"context"
	"testing"

	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService_GenerateAndGet(t *testing.T) {
	_, svc, _ := newTestEnv(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "u1")
	assert.Equal(t, code.ErrorLinkNotFound, err)

	link, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, link.Hash, util.ShareHashLength)
	assert.False(t, link.Active)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, link.Hash, got.Hash)
}

func TestShareService_Generate_AlreadyPresent(t *testing.T) {
	_, svc, _ := newTestEnv(t)
	ctx := context.Background()

	first, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.Generate(ctx, "u1")
	assert.Equal(t, code.ErrorLinkAlreadyPresent, err)

	// The original link survives the rejected second attempt.
	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.Hash, got.Hash)
}

func TestShareService_ToggleTwiceRestoresState(t *testing.T) {
	_, svc, _ := newTestEnv(t)
	ctx := context.Background()

	link, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)

	on, err := svc.Toggle(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, on.Active)
	assert.Equal(t, link.Hash, on.Hash)

	off, err := svc.Toggle(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, off.Active)
	assert.Equal(t, link.Hash, off.Hash)
}

func TestShareService_Toggle_NoLink(t *testing.T) {
	_, svc, _ := newTestEnv(t)

	_, err := svc.Toggle(context.Background(), "u1")
	assert.Equal(t, code.ErrorLinkNotFound, err)
}

func TestShareService_ViewByHash(t *testing.T) {
	contentSvc, svc, _ := newTestEnv(t)
	ctx := context.Background()

	_, err := contentSvc.Create(ctx, "u1", noteRequest("A", "hi"))
	require.NoError(t, err)

	link, err := svc.Generate(ctx, "u1")
	require.NoError(t, err)

	// Inactive link is indistinguishable from an unknown hash.
	_, err = svc.ViewByHash(ctx, link.Hash)
	assert.Equal(t, code.ErrorHashNotFound, err)

	_, err = svc.Toggle(ctx, "u1")
	require.NoError(t, err)

	list, err := svc.ViewByHash(ctx, link.Hash)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Title)

	_, err = svc.ViewByHash(ctx, "does-not-exist-hash-x")
	assert.Equal(t, code.ErrorHashNotFound, err)
}
