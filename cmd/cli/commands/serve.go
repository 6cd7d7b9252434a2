package commands

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pawsitive-rescue/volunteer-match/pkg/server"
)

// ServeCmd creates the serve command
func ServeCmd(getApp func() *AppContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if os.Getenv("GIN_MODE") == "" {
				gin.SetMode(gin.ReleaseMode)
			}

			listenAddr := app.Cfg.ListenAddr
			if addr != "" {
				listenAddr = addr
			}

			srv := server.New(app.Store, app.Logger, app.Notifier, app.Cfg.DefaultHours)
			return srv.Run(listenAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
