package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/dryfruits-storefront/internal/config"
)

func TestNewWithOutput_JSONFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := NewWithOutput(cfg, &buf)

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.WithField("order_id", "ORD1").Warn("order placed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ORD1", entry["order_id"])
	assert.Equal(t, "order placed", entry["msg"])
}

func TestNewWithOutput_BadLevelFallsBackToInfo(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "chatty"

	log := NewWithOutput(cfg, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
