// Package statsview provides an optional HTTP server offering runtime
// statistics of the emulator process.
//
// After launch, graphical statistics are viewable at:
//
//	<address>/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	<address>/debug/pprof/
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

const path = "/debug/statsview"

// Server is a running statistics server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch starts the statistics server on the given address in a new goroutine.
func Launch(logger *log.Logger, address string) *Server {
	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()

	go func() {
		mgr.Start()
	}()

	logger.Info("Stats server available", log.String("url", "http://"+address+path))
	return &Server{mgr: mgr}
}

// Stop shuts the server down.
func (s *Server) Stop() {
	s.mgr.Stop()
}
