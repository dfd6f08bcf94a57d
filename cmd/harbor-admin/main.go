package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/harbor-admin/internal/cli"
	"github.com/MKhiriev/harbor-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	stop()
	if err != nil {
		os.Exit(1)
	}
}
