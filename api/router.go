package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/saeidalz13/battleship-referee/db/sqlc"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
	mc "github.com/saeidalz13/battleship-referee/models/connection"
)

const (
	URIWs        = "/battleship"
	URIHealth    = "/health"
	URIAnalytics = "/analytics"
)

type RespHealth struct {
	Games    int `json:"games"`
	Sessions int `json:"sessions"`
}

type RespAnalytics struct {
	ServerIp      string `json:"server_ip"`
	GamesCreated  int64  `json:"games_created"`
	GamesFinished int64  `json:"games_finished"`
	ShotsFired    int64  `json:"shots_fired"`
}

func NewRouter(rp RequestProcessor, gm mb.GameManager, sm mc.SessionManager) *way.Router {
	router := way.NewRouter()
	router.Handle(http.MethodGet, URIWs, rp)
	router.HandleFunc(http.MethodGet, URIHealth, handleHealth(gm, sm))
	router.HandleFunc(http.MethodGet, URIAnalytics, handleAnalytics(rp.Analytics()))
	return router
}

func handleHealth(gm mb.GameManager, sm mc.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RespHealth{
			Games:    gm.CountGames(),
			Sessions: sm.CountSessions(),
		})
	}
}

func handleAnalytics(analytics *sqlc.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !analytics.Enabled() {
			http.Error(w, "analytics is disabled", http.StatusNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), sqlc.QuerierCtxTimeout)
		defer cancel()

		var resp RespAnalytics
		var err error
		if resp.GamesCreated, err = analytics.GetGamesCreatedCount(ctx); err != nil {
			analyticsFailed(w, err)
			return
		}
		if resp.GamesFinished, err = analytics.GetGamesFinishedCount(ctx); err != nil {
			analyticsFailed(w, err)
			return
		}
		if resp.ShotsFired, err = analytics.GetShotsFiredCount(ctx); err != nil {
			analyticsFailed(w, err)
			return
		}
		resp.ServerIp = analytics.ServerInet().IPNet.IP.String()

		writeJSON(w, http.StatusOK, resp)
	}
}

func analyticsFailed(w http.ResponseWriter, err error) {
	log.Errorln("failed to read analytics:", err)
	http.Error(w, "failed to read analytics", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnln("failed to write json response:", err)
	}
}
