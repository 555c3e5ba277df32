package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "fsxchallenge/docs"
	"fsxchallenge/handler"
	"fsxchallenge/middleware"
	"fsxchallenge/service/etc"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginlogrus "github.com/toorop/gin-logrus"
)

// @title       FSX Challenge API
// @version     dev
// @description Random course generator for FSX Challenge.
// @basePath    /

func setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(ginlogrus.Logger(log.StandardLogger()), gin.Recovery())

	r.GET("/", handler.HandleChallenge)
	r.GET("/ping", handler.HandlePing)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func main() {
	router := setupRouter()
	srv := &http.Server{
		Addr:    etc.Config.Addr(),
		Handler: router,
	}

	go func() {
		// service connections
		log.WithField("addr", srv.Addr).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Error listening")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), etc.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server shutdown failed")
	}
	log.Info("Server exiting")
}
