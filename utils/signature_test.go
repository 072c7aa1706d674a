package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()

	header := SignWebhookPayload(body, testSecret, now)
	require.NoError(t, VerifyWebhookSignature(body, header, testSecret, now))
}

func TestVerifyWebhookSignatureRejectsTamperedBody(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	now := time.Now()

	header := SignWebhookPayload(body, testSecret, now)
	err := VerifyWebhookSignature([]byte(`{"id":"evt_2"}`), header, testSecret, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyWebhookSignatureRejectsWrongSecret(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	now := time.Now()

	header := SignWebhookPayload(body, "whsec_other", now)
	err := VerifyWebhookSignature(body, header, testSecret, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyWebhookSignatureRejectsStaleTimestamp(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	signedAt := time.Now().Add(-SignatureTolerance - time.Minute)

	header := SignWebhookPayload(body, testSecret, signedAt)
	err := VerifyWebhookSignature(body, header, testSecret, time.Now())
	assert.ErrorIs(t, err, ErrStaleSignature)
}

func TestVerifyWebhookSignatureRejectsFutureTimestamp(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	signedAt := time.Now().Add(SignatureTolerance + time.Minute)

	header := SignWebhookPayload(body, testSecret, signedAt)
	err := VerifyWebhookSignature(body, header, testSecret, time.Now())
	assert.ErrorIs(t, err, ErrStaleSignature)
}

func TestVerifyWebhookSignatureRejectsMalformedHeaders(t *testing.T) {
	body := []byte(`{}`)
	now := time.Now()

	for _, header := range []string{
		"",
		"garbage",
		"t=123",
		"v1=deadbeef",
		"t=notanumber,v1=deadbeef",
	} {
		err := VerifyWebhookSignature(body, header, testSecret, now)
		assert.ErrorIs(t, err, ErrMalformedSignature, "header %q", header)
	}
}
