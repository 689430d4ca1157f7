package remote

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCardClient_FindBySlug(t *testing.T) {
	cardID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tarjetas/slug/juan-perez":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{
				"id": "`+cardID.String()+`",
				"slug": "juan-perez",
				"nombre": "Juan Pérez",
				"email": "juan@x.com",
				"mostrar_email": false,
				"plantilla_id": 2,
				"archivo_negocio": "data:application/pdf;base64,JVBERi0=",
				"archivo_negocio_tipo": "pdf",
				"archivo_negocio_nombre": "Menú"
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewCardClient(server.URL+"/", time.Second, newDiscardLogger())

	card, err := client.FindBySlug(context.Background(), "juan-perez")
	require.NoError(t, err)
	assert.Equal(t, cardID, card.ID)
	assert.Equal(t, "Juan Pérez", card.Name)
	assert.Equal(t, "2", card.TemplateID)
	assert.False(t, card.EmailVisible())
	require.NotNil(t, card.Document)
	assert.Equal(t, entity.DocumentTypePDF, card.Document.Type)
	assert.Equal(t, "Menú", card.Document.Title)

	_, err = client.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestCardClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewCardClient(server.URL, time.Second, newDiscardLogger())

	_, err := client.FindBySlug(context.Background(), "juan-perez")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCardNotFound)
}

func TestCardClient_ListLinksOrdersByPositionThenInsertion(t *testing.T) {
	cardID := uuid.New()
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/enlaces/"+cardID.String(), r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": "`+third.String()+`", "titulo": "C", "url": "c.com", "orden": 2, "created_at": "2024-01-01T00:00:00Z"},
			{"id": "`+second.String()+`", "titulo": "B", "url": "b.com", "orden": 1, "created_at": "2024-01-02T00:00:00Z"},
			{"id": "bad-id", "titulo": "X", "url": "x.com", "orden": 0},
			{"id": "`+first.String()+`", "titulo": "A", "url": "a.com", "orden": 1, "created_at": "2024-01-01T00:00:00Z"}
		]`)
	}))
	defer server.Close()

	client := NewCardClient(server.URL, time.Second, newDiscardLogger())

	links, err := client.ListLinks(context.Background(), cardID)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, []uuid.UUID{first, second, third}, []uuid.UUID{links[0].ID, links[1].ID, links[2].ID})
	assert.Equal(t, cardID, links[0].CardID)
}

func TestCardClient_ListLinksFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewCardClient(server.URL, time.Second, newDiscardLogger())

			links, err := client.ListLinks(context.Background(), uuid.New())
			require.Error(t, err)
			assert.Nil(t, links)
			assert.NotErrorIs(t, err, repository.ErrCardNotFound)
		})
	}
}
