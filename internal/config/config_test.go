package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"twofifty-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("TWOFIFTY_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("TWOFIFTY_ROOM_MIN_PLAYERS", "5")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("redis.internal:6379", cfg.Redis.Addr)
	a.Equal(2, cfg.Redis.DB)
	a.Equal(30, cfg.Room.TTLMinutes)
	a.Equal(time.Minute*30, cfg.RoomTTL())
	a.Equal(5, cfg.Room.MinPlayers)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("TWOFIFTY_ROOM_MIN_PLAYERS", "6")
	// ensure we aren't using a pointer
	cfg.Room.MinPlayers = 99
	cfg = Instance()
	a.Equal(5, cfg.Room.MinPlayers)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("TWOFIFTY_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Hour*2, cfg.RoomTTL())
	assert.Equal(t, 4, cfg.Room.MinPlayers)
}
