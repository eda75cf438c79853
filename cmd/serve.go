package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/loopholelabs/logging"
	"github.com/loopholelabs/logging/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/beagleboard/gbridge/pkg/config"
	"github.com/beagleboard/gbridge/pkg/greybus"
	gbprom "github.com/beagleboard/gbridge/pkg/metrics/prometheus"
	"github.com/beagleboard/gbridge/pkg/sdhc/memcard"
	"github.com/beagleboard/gbridge/pkg/sdio"
)

var (
	cmdServe = &cobra.Command{
		Use:   "serve",
		Short: "Serve a simulated sdio device to greybus peers",
		Long:  ``,
		Run:   runServe,
	}
)

var serveAddr string
var serveConf string
var serveMetrics string
var serveDebug bool

func init() {
	rootCmd.AddCommand(cmdServe)
	cmdServe.Flags().StringVarP(&serveAddr, "addr", "a", ":4270", "Address to serve from")
	cmdServe.Flags().StringVarP(&serveConf, "conf", "c", "gbridge.conf", "Configuration file")
	cmdServe.Flags().StringVarP(&serveMetrics, "metrics", "m", "", "Prom metrics address")
	cmdServe.Flags().BoolVarP(&serveDebug, "debug", "d", false, "Debug logging (trace)")
}

func runServe(_ *cobra.Command, _ []string) {
	var log types.RootLogger
	var reg *prometheus.Registry
	var met sdio.Metrics

	if serveDebug {
		log = logging.New(logging.Zerolog, "gbridge.serve", os.Stderr)
		log.SetLevel(types.TraceLevel)
	}

	if serveMetrics != "" {
		reg = prometheus.NewRegistry()

		met = gbprom.New(reg)

		// Add the default go metrics
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		http.Handle("/metrics", promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{
				EnableOpenMetrics: true,
				Registry:          reg,
			},
		))

		go http.ListenAndServe(serveMetrics, nil)
	}

	conf, err := config.ReadSchema(serveConf)
	if err != nil {
		panic(err)
	}
	if len(conf.Device) == 0 {
		panic("no device configured")
	}

	// One controller per configured device; connections are served off
	// the first one.
	ds := conf.Device[0]
	fmt.Printf("Setup device [%s] size %s - %d\n", ds.Name, ds.Size, ds.ByteSize())

	props := memcard.DefaultProps()
	if ds.FMin > 0 {
		props.FMin = uint32(ds.FMin)
	}
	if ds.FMax > 0 {
		props.FMax = uint32(ds.FMax)
	}
	// A caps flag in the config replaces the defaults wholesale.
	if ds.Bus4Bit || ds.Bus8Bit || ds.HighSpeed {
		props.Caps.Bus4Bit = ds.Bus4Bit
		props.Caps.Bus8Bit = ds.Bus8Bit
		props.Caps.HighSpeed = ds.HighSpeed
	}

	card := memcard.NewWithProps(int(ds.ByteSize()), props)
	driver := sdio.NewDriver(card, log, met)

	addr := conf.Listen
	if addr == "" {
		addr = serveAddr
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		panic(fmt.Sprintf("Listener issue %v", err))
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		l.Close()
		os.Exit(1)
	}()

	fmt.Printf("Waiting for connections on %s...\n", addr)

	var cport uint16
	for {
		con, err := l.Accept()
		if err != nil {
			return
		}
		fmt.Printf("Received connection from %s\n", con.RemoteAddr().String())

		go func(con net.Conn, cport uint16) {
			defer con.Close()
			ch, err := greybus.NewChannel(cport, con, driver, log)
			if err != nil {
				return
			}
			defer ch.Close()
			if err := ch.Serve(); err != nil && log != nil {
				log.Error().Err(err).Msg("channel closed with error")
			}
		}(con, cport)
		cport++
	}
}
