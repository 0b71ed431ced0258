package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartPprofServer exposes the profiling endpoints on their own listener,
// kept off the public port so they stay reachable only inside the network.
func StartPprofServer(addr string, logger *zap.Logger) {
	r := gin.New()
	pprof.Register(r)

	go func() {
		logger.Info("Profiling endpoints listening", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("Profiling listener failed", zap.Error(err))
		}
	}()
}
