// Command driver is a minimal terminal client for drivers: list assigned
// errands, advance one a step, or raise a bypass for a mismatched order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/driverclient"

	"github.com/labstack/gommon/log"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "laundry service base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	client, err := driverclient.NewClient(*baseURL, nil)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "list":
		err = listRequests(ctx, client, flag.Arg(1))
	case "advance":
		err = advance(ctx, client, flag.Args()[1:])
	case "bypass":
		err = raiseBypass(ctx, client, flag.Args()[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  driver [-url URL] list [pickup|delivery]
  driver [-url URL] advance REQUEST_ID pickup|delivery [VERSION]
  driver [-url URL] bypass ORDER_ID WORKER_ID NOTE`)
}

func listRequests(ctx context.Context, client *driverclient.Client, kind string) error {
	page, err := client.ListRequests(ctx, kind, 1, 50, "createdAt", "asc")
	if err != nil {
		return err
	}

	fmt.Printf("%d errand(s)\n", page.Total)
	for _, req := range page.Requests {
		fmt.Printf("%s  %-8s  %-24s  v%d  %s (%s, %.1f km)\n",
			req.ID, req.Type, req.Status, req.Version, req.CustomerName,
			req.AddressLine, req.DistanceKm)
	}
	return nil
}

func advance(ctx context.Context, client *driverclient.Client, args []string) error {
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	requestID, err := kernel.UUIDFromString(args[0])
	if err != nil {
		return err
	}
	kind, err := request.KindFromString(args[1])
	if err != nil {
		return err
	}

	expectedVersion := 0
	if len(args) > 2 {
		if _, err = fmt.Sscanf(args[2], "%d", &expectedVersion); err != nil {
			return fmt.Errorf("invalid version %q: %w", args[2], err)
		}
	}

	err = client.Advance(ctx, requestID, kind, expectedVersion)
	switch {
	case errors.Is(err, driverclient.ErrStaleState):
		return fmt.Errorf("someone changed this errand first, refresh and try again")
	case err != nil:
		return err
	}

	fmt.Println("advanced")
	return nil
}

func raiseBypass(ctx context.Context, client *driverclient.Client, args []string) error {
	if len(args) < 3 {
		usage()
		os.Exit(2)
	}

	orderID, err := kernel.UUIDFromString(args[0])
	if err != nil {
		return err
	}
	workerID, err := kernel.UUIDFromString(args[1])
	if err != nil {
		return err
	}

	if err = client.RaiseBypass(ctx, orderID, workerID, args[2]); err != nil {
		return err
	}

	fmt.Println("bypass raised, waiting for admin review")
	return nil
}
