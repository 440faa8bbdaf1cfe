package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_Response(t *testing.T) {
	tests := map[string]struct {
		outcome    Outcome
		wantJSON   string
		wantStatus int
	}{
		"success": {
			outcome:    Outcome{Status: StatusSuccess, Gateway: "192.168.1.1", MAC: "00:11:22:33:44:55", System: "Linux"},
			wantJSON:   `{"status":"success","gateway_ip":"192.168.1.1","gateway_mac":"00:11:22:33:44:55","system":"Linux"}`,
			wantStatus: http.StatusOK,
		},
		"partial": {
			outcome:    Outcome{Status: StatusPartial, Gateway: "192.168.1.1", System: "Darwin"},
			wantJSON:   `{"status":"partial","gateway_ip":"192.168.1.1","gateway_mac":"Not found (try ping first)","system":"Darwin"}`,
			wantStatus: http.StatusOK,
		},
		"error": {
			outcome:    Outcome{Status: StatusError, System: "Windows", Message: NoGatewayMessage, Gateway: "ignored"},
			wantJSON:   `{"status":"error","system":"Windows","message":"Could not detect default gateway. Try running as admin/sudo."}`,
			wantStatus: http.StatusInternalServerError,
		},
		"enriched": {
			outcome:    Outcome{Status: StatusSuccess, Gateway: "10.0.0.1", MAC: "aa:bb:cc:dd:ee:ff", System: "Linux", Hostname: "fritz.box", Scope: ScopePrivate},
			wantJSON:   `{"status":"success","gateway_ip":"10.0.0.1","gateway_mac":"aa:bb:cc:dd:ee:ff","system":"Linux","gateway_hostname":"fritz.box","gateway_scope":"private"}`,
			wantStatus: http.StatusOK,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(test.outcome)
			require.NoError(t, err)

			assert.JSONEq(t, test.wantJSON, string(data))
			assert.Equal(t, test.wantStatus, test.outcome.HTTPStatus())
		})
	}
}
