package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/config"
)

func TestOpenStores(t *testing.T) {
	stores, closeFn, err := OpenStores(context.Background(), &config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, stores.Users)
	assert.NotNil(t, stores.Profiles)
	assert.NotNil(t, stores.Posts)

	_, _, err = OpenStores(context.Background(), &config.Config{StoreDriver: "sqlite"})
	assert.ErrorContains(t, err, "sqlite")
}

func TestNew_OptionalCollaboratorsStayNil(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s", TokenTTL: time.Hour, GitHubAPIURL: "https://api.github.com"}
	c := New(cfg, nil, MemoryStores(), Options{})

	assert.Nil(t, c.Redis)
	assert.Nil(t, c.Profiles.Index)
	assert.Nil(t, c.Auth.Mail)
	assert.NotNil(t, c.Github.Client)
	assert.NotNil(t, c.Logger)

	token, _, err := c.JWT.Generate("u1")
	require.NoError(t, err)
	uid, err := c.JWT.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}
