package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectMongo_UnreachableServer(t *testing.T) {
	t.Parallel()

	uri := "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200"
	db, client, err := ConnectMongo(uri, "authdb", 2*time.Second, zap.NewNop())
	require.Error(t, err)
	require.Nil(t, db)
	require.Nil(t, client)
}

func TestConnectRedis_UnreachableServer(t *testing.T) {
	t.Parallel()

	rdb, err := ConnectRedis("127.0.0.1:1", "", 0, 500*time.Millisecond, zap.NewNop())
	require.Error(t, err)
	require.Nil(t, rdb)
}
