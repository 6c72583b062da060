package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"chesscore/internal/config"
	"chesscore/internal/server/game"
	httpserver "chesscore/internal/server/http"
	"chesscore/internal/store"
)

func ginMode(mode string) string {
	switch mode {
	case "dev":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	}
	return gin.ReleaseMode
}

func main() {
	configFile := flag.String("f", "etc/chess.yaml", "the config file")
	addr := flag.String("addr", "", "listen address, overrides the config file")
	flag.Parse()

	c, err := config.Load(*configFile)
	logx.Must(err)
	if *addr != "" {
		c.Addr = *addr
	}
	logx.MustSetup(c.Log)
	defer logx.Close()
	gin.SetMode(ginMode(c.Mode))

	var (
		rec     game.Recorder
		history httpserver.History
	)
	if !c.Store.Disabled {
		st, err := store.Open(c.Store.Path, c.Store.InMemory)
		logx.Must(err)
		defer st.Close()
		rec, history = st, st
		saved, err := st.ListGames()
		logx.Must(err)
		logx.Infof("game records in %s (in-memory=%v): %d saved games", c.Store.Path, c.Store.InMemory, len(saved))
	}

	h := httpserver.NewHandler(game.NewManager(rec), history)
	srv := &http.Server{
		Addr:    c.Addr,
		Handler: httpserver.NewRouter(h),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Errorf("shutdown: %v", err)
		}
	}()

	logx.Infof("%s listening on %s", c.Name, c.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logx.Errorf("serve: %v", err)
	}
}
