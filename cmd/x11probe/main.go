// Command x11probe is a minimal diagnostic client: it dials a Unix-domain
// X server socket, performs the connection handshake, prints the resulting
// screen and format records, and optionally maps a throwaway window so the
// round trip can be eyeballed against a real display.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/x11wire/x11c/client"
	"github.com/x11wire/x11c/proto"
)

func main() {
	app := &cli.App{
		Name:  "x11probe",
		Usage: "connect to an X server over a Unix-domain socket and report what it offers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "socket",
				Value: "/tmp/.X11-unix/X0",
				Usage: "path to the X server's Unix-domain socket",
			},
			&cli.BoolFlag{
				Name:  "map-window",
				Usage: "create and map a 1x1 throwaway window before disconnecting",
			},
			&cli.BoolFlag{
				Name:  "big-requests",
				Usage: "negotiate the BIG-REQUESTS extension during connect",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log protocol-level detail to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	opts := []client.Option{
		client.WithBigRequests(c.Bool("big-requests")),
	}
	if c.Bool("verbose") {
		opts = append(opts, client.WithLogger(client.NewGoLoggingAdapter("x11probe")))
	}

	conn, err := client.Connect(c.String("socket"), opts...)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	info := conn.ConnInfo
	fmt.Printf("vendor: %s\n", info.Vendor)
	fmt.Printf("release: %d\n", info.ReleaseNumber)
	fmt.Printf("resource ids: base=%#x mask=%#x\n", info.ResourceIDBase, info.ResourceIDMask)
	fmt.Printf("max request length: %d words\n", info.MaxRequestLength)
	fmt.Printf("screens: %d\n", len(info.Screens))
	for i, s := range info.Screens {
		fmt.Printf("  screen %d: root=%#x %dx%d depth=%d\n", i, s.Root, s.WidthInPixels, s.HeightInPixels, s.RootDepth)
	}

	if !c.Bool("map-window") {
		return nil
	}
	if len(info.Screens) == 0 {
		return fmt.Errorf("server advertised no screens, cannot map a window")
	}
	screen := info.Screens[0]

	win := proto.Window(conn.NewID())
	err = conn.CreateWindow(proto.CreateWindowArgs{
		Depth:       screen.RootDepth,
		Window:      win,
		Parent:      screen.Root,
		X:           0,
		Y:           0,
		Width:       1,
		Height:      1,
		BorderWidth: 0,
		Class:       proto.ClassInputOutput,
		Visual:      screen.RootVisual,
		Values: proto.WindowValue{
			EventMask: u32ptr(0),
		},
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if err := conn.MapWindow(win); err != nil {
		return fmt.Errorf("map window: %w", err)
	}

	// Give the server a moment to process the map before tearing the
	// connection down; there is no synchronous confirmation for MapWindow
	// short of waiting on a MapNotify event, which a probe run may not
	// receive if the window manager never reparents it.
	time.Sleep(200 * time.Millisecond)

	if err := conn.DestroyWindow(win); err != nil {
		return fmt.Errorf("destroy window: %w", err)
	}
	fmt.Printf("mapped and destroyed window %#x on screen root %#x\n", win, screen.Root)
	return nil
}

func u32ptr(v uint32) *uint32 { return &v }
