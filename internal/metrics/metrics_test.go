package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAction(t *testing.T) {
	before := testutil.ToFloat64(assistantActions.WithLabelValues("greet"))
	RecordAction("greet")
	assert.Equal(t, before+1, testutil.ToFloat64(assistantActions.WithLabelValues("greet")))
}

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(relaySubmissions.WithLabelValues("sent"))
	RecordSubmission("sent")
	RecordSubmission("sent")
	assert.Equal(t, before+2, testutil.ToFloat64(relaySubmissions.WithLabelValues("sent")))
}
