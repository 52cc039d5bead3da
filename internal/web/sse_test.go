package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/navikt/roomkiosk/internal/models"
	"github.com/navikt/roomkiosk/internal/repository/memory"
	"github.com/navikt/roomkiosk/internal/schedule"
	"github.com/navikt/roomkiosk/internal/service"
	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var testNow = time.Date(2025, 5, 8, 10, 15, 0, 0, time.UTC)

func setupRooms(t *testing.T) (*service.RoomService, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	room := models.Room{
		ID:   "conf-a",
		Name: "Conference Room A",
		Schedule: []models.Meeting{{
			ID:        "b",
			Title:     "Briefing",
			StartTime: time.Date(2025, 5, 8, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 5, 8, 11, 0, 0, 0, time.UTC),
			Kind:      models.MeetingKindScheduled,
		}},
	}
	require.NoError(t, repo.SaveRoom(context.Background(), &room))

	svc := service.NewRoomService(repo, service.Options{
		Clock:  func() time.Time { return testNow },
		Logger: discard,
	})
	return svc, repo
}

func TestSSEServeHTTPRejections(t *testing.T) {
	svc, _ := setupRooms(t)
	manager := NewSSEManager(svc, discard)
	defer manager.Close()

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"missing stream", http.MethodGet, "/events", http.StatusBadRequest},
		{"unknown room", http.MethodGet, "/events?stream=nope", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/events?stream=conf-a", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			manager.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	assert.False(t, manager.server.StreamExists("nope"), "unknown rooms must not get a stream")
}

// subscribe connects an SSE client to the room stream and returns its event channel
func subscribe(t *testing.T, url, roomID string) chan *sse.Event {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events := make(chan *sse.Event, 10)
	client := sse.NewClient(url + "/events")
	require.NoError(t, client.SubscribeChanWithContext(ctx, roomID, events))
	return events
}

func nextEvent(t *testing.T, events chan *sse.Event) *sse.Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestSSEPublishesRoomUpdates(t *testing.T) {
	svc, repo := setupRooms(t)
	manager := NewSSEManager(svc, discard)

	server := httptest.NewServer(manager)
	t.Cleanup(server.Close)
	t.Cleanup(manager.Close)

	events := subscribe(t, server.URL, "conf-a")

	t.Run("NotifyRoomUpdate", func(t *testing.T) {
		room, err := repo.GetRoom(context.Background(), "conf-a")
		require.NoError(t, err)
		manager.NotifyRoomUpdate(room)

		ev := nextEvent(t, events)
		assert.Equal(t, UpdateEvent, string(ev.Event))
		assert.NotEmpty(t, ev.ID)

		var status service.RoomStatus
		require.NoError(t, json.Unmarshal(ev.Data, &status))
		assert.Equal(t, "conf-a", status.RoomID)
		assert.Equal(t, schedule.StateBusy, status.State)
		require.NotNil(t, status.Current)
		assert.Equal(t, "b", status.Current.ID)
	})

	t.Run("PublishAll", func(t *testing.T) {
		require.NoError(t, manager.PublishAll(context.Background()))

		ev := nextEvent(t, events)
		var status service.RoomStatus
		require.NoError(t, json.Unmarshal(ev.Data, &status))
		assert.Equal(t, "10:15", status.Clock)
	})

	t.Run("Service callbacks reach the stream", func(t *testing.T) {
		svc.RegisterUpdateCallback(manager.NotifyRoomUpdate)
		_, err := svc.EndCurrent(context.Background(), "conf-a")
		require.NoError(t, err)

		ev := nextEvent(t, events)
		var status service.RoomStatus
		require.NoError(t, json.Unmarshal(ev.Data, &status))
		assert.Equal(t, schedule.StateFree, status.State)
		assert.Nil(t, status.Current)
	})
}

func TestPublishWithoutSubscribers(t *testing.T) {
	svc, _ := setupRooms(t)
	manager := NewSSEManager(svc, discard)
	defer manager.Close()

	require.NoError(t, manager.PublishAll(context.Background()))
	assert.True(t, manager.server.StreamExists("conf-a"))
}
