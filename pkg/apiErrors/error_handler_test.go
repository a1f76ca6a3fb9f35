package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "requisição inválida", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "variante desconhecida", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "planilha inacessível", code: ErrFeedUnreachable, wantStatus: http.StatusBadGateway},
		{name: "planilha ilegível", code: ErrFeedUnparseable, wantStatus: http.StatusBadGateway},
		{name: "origem não configurada", code: ErrFeedNotConfigured, wantStatus: http.StatusServiceUnavailable},
		{name: "limite excedido", code: ErrTooManyRequests, wantStatus: http.StatusTooManyRequests},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Equal(t, map[string]any{"campo": "valor"}, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrFeedUnreachable)
	assert.Equal(t, ErrFeedUnreachable, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)

	apiErr = FromError(nil, ErrFeedUnreachable)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
