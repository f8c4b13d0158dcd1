package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rbezerra/corretora-financeiro-api/internal/scheduler"
	"github.com/rbezerra/corretora-financeiro-api/pkg/apiErrors"
)

// RunSnapshotSync dispara manualmente a sincronização de snapshots
func RunSnapshotSync(syncService *scheduler.SnapshotSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshots não disponível", nil)
			return
		}

		logrus.Info("Sincronização manual de snapshots solicitada")

		// a sincronização roda em background; o contexto da requisição
		// não serve porque é cancelado na resposta
		go syncService.SyncNow(context.Background())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "sincronização iniciada",
		})
	}
}

// GetSnapshotSyncStatus responde os horários da última sincronização
func GetSnapshotSyncStatus(syncService *scheduler.SnapshotSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshots não disponível", nil)
			return
		}

		startedAt, completedAt := syncService.LastSync()

		status := map[string]any{
			"last_sync_started_at":   formatSyncTime(startedAt),
			"last_sync_completed_at": formatSyncTime(completedAt),
		}

		writeJSON(w, r, status)
	}
}

func formatSyncTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
