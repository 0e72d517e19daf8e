// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/build"
	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/logging"
	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/must"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/rest"
)

var webCmd = &cobra.Command{
	Use:   "web [flags]",
	Short: "Start the REST server",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, args []string) {
		var s http.Server
		switch {
		case *httpFlag != "" && *httpsFlag != "":
			panic(fmt.Errorf("only one of --http or --https may be present"))
		case *httpsFlag != "":
			s.Addr = *httpsFlag
			if *certFlag == "" || *keyFlag == "" {
				panic(fmt.Errorf("--cert and --key are required for https"))
			}
		case *httpFlag != "":
			s.Addr = *httpFlag
			if *certFlag != "" || *keyFlag != "" {
				panic(fmt.Errorf("--cert and --key not allowed with --http"))
			}
		default:
			s.Addr = ":8080"
		}

		gin.DefaultWriter = logging.LogWriter()
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
		router := gin.New()
		router.Use(gin.Recovery())
		rest.New(newRegistry(), router)
		s.Handler = router

		if *httpsFlag != "" {
			log.Info("listening for https", "addr", s.Addr, "version", build.Version)
			must.Must(s.ListenAndServeTLS(*certFlag, *keyFlag))
		} else {
			log.Info("listening for http", "addr", s.Addr, "version", build.Version)
			must.Must(s.ListenAndServe())
		}
	},
}

var (
	httpFlag, httpsFlag *string
	certFlag, keyFlag   *string
)

func init() {
	rootCmd.AddCommand(webCmd)
	httpFlag = webCmd.Flags().String("http", "", "host:port address for insecure http listener")
	httpsFlag = webCmd.Flags().String("https", "", "host:port address for secure https listener")
	certFlag = webCmd.Flags().String("cert", "", "TLS certificate file (PEM format) for https")
	keyFlag = webCmd.Flags().String("key", "", "Private key (PEM format) for https")
}
