package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"localPath": "./data/store",
		},
		"secretKey": map[string]any{
			"access": "x",
		},
	}

	assert.Equal(t, "storage.localPath", canonicalizeEnvKey("STORAGE_LOCALPATH", existing))
	assert.Equal(t, "secretKey.access", canonicalizeEnvKey("SECRETKEY_ACCESS", existing))
	// Unknown segments pass through lowercased.
	assert.Equal(t, "pubsub.topicid", canonicalizeEnvKey("PUBSUB_TOPICID", existing))
}

func TestDefaultFulfillment_MatchesDemoSchedule(t *testing.T) {
	f := DefaultFulfillment()

	assert.Equal(t, 2*time.Second, f.PreparingAfter)
	assert.Equal(t, 5*time.Second, f.DispatchedAfter)
	assert.Equal(t, 8*time.Second, f.InTransitAfter)
	assert.Equal(t, 10*time.Second, f.DeliveredAfter)
	assert.Equal(t, 10*time.Minute, f.EstimatedDeliveryWindow)
}
