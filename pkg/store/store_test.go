package store_test

import (
	"context"
	"testing"
	"time"

	gnprimer "github.com/gnames/gnprimer/pkg"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRun(t *testing.T) {
	assert := assert.New(t)
	r1 := store.NewRun("rank", "primer3_output.txt")
	r2 := store.NewRun("rank", "primer3_output.txt")

	_, err := uuid.Parse(r1.ID)
	assert.Nil(err)
	assert.NotEqual(r1.ID, r2.ID)
	assert.Equal("rank", r1.Command)
	assert.Equal(gnprimer.Version, r1.Version)
	_, err = time.Parse(time.RFC3339, r1.StartedAt)
	assert.Nil(err)
}

func TestNoop(t *testing.T) {
	var s store.Store = store.Noop{}
	ctx := context.Background()
	assert.Nil(t, s.Init(ctx))
	assert.Nil(t, s.SaveRun(ctx, store.NewRun("genes", "")))
	assert.Nil(t, s.SaveGenes(ctx, "id", nil))
	assert.Nil(t, s.SaveRegions(ctx, "id", nil))
	assert.Nil(t, s.SavePrimers(ctx, "id", nil))
	assert.Nil(t, s.Close())
}
