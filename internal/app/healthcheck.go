package app

import (
	"fmt"
	"net/http"

	"github.com/dakotatools/dakgo/internal/dag"
)

func stateName(s int32) string {
	switch s {
	case dag.Running:
		return "running"
	case dag.Done:
		return "done"
	case dag.Failed:
		return "failed"
	default:
		return "pending"
	}
}

// healthHandler reports liveness plus the per-study execution state.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
	if a.graph == nil {
		return
	}
	for _, node := range a.graph.Nodes {
		fmt.Fprintf(w, "%s: %s\n", node.ID, stateName(node.State.Load()))
	}
}

// startHealthcheckServer initializes and runs the health check HTTP server.
func (a *App) startHealthcheckServer(port int) {
	a.logger.Debug("Configuring health check server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)

	go func() {
		a.logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			a.logger.Error("Health check server failed", "error", err)
		}
	}()
}
