package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	coreControl "github.com/core-tools/hsu-core/pkg/control"
	coreDomain "github.com/core-tools/hsu-core/pkg/domain"
	flags "github.com/jessevdk/go-flags"

	"github.com/core-tools/hsu-srvcfg/pkg/control"
	"github.com/core-tools/hsu-srvcfg/pkg/domain"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/manager"
)

type flagOptions struct {
	AttachPort int           `long:"port" description:"control port of the daemon on 127.0.0.1"`
	Timeout    time.Duration `long:"timeout" default:"10s" description:"request timeout"`
	Verbose    bool          `long:"verbose" description:"log client activity"`
}

const usage = `usage: srvcfgctl [options] <command>

commands:
  status                         show daemon status
  list                           list managed units
  get <unit>                     show one unit
  set <unit> <property> <value>  request an edit; property is Masked, Enabled, Running or Port
`

func main() {
	var opts flagOptions
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	args, err := parser.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}
	if len(args) == 0 {
		fmt.Print(usage)
		os.Exit(1)
	}

	port := opts.AttachPort
	if port == 0 {
		port = manager.DefaultControlPort
	}

	logger := logging.NewNopLogger()
	if opts.Verbose {
		backend, err := logging.NewZapBackend(logging.DefaultZapConfig())
		if err == nil {
			logger = backend.Logger("module: srvcfg-client , ")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	coreLogger := logging.NewCoreLogger("module: hsu-core , ", logger)
	coreConnection, err := coreControl.NewConnection(coreControl.ConnectionOptions{AttachPort: port}, coreLogger)
	if err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer coreConnection.Shutdown()

	coreClientGateway := coreControl.NewGRPCClientGateway(coreConnection.GRPC(), coreLogger)
	retryPingOptions := coreDomain.RetryPingOptions{
		RetryAttempts: 3,
		RetryInterval: 500 * time.Millisecond,
	}
	if err := coreDomain.RetryPing(ctx, coreClientGateway, retryPingOptions, coreLogger); err != nil {
		fmt.Printf("Daemon not reachable on port %d: %v\n", port, err)
		coreConnection.Shutdown()
		os.Exit(1)
	}

	client := control.NewGRPCClientGateway(coreConnection.GRPC(), logger)
	if err := execute(ctx, client, args); err != nil {
		fmt.Printf("Error: %v\n", err)
		coreConnection.Shutdown()
		os.Exit(1)
	}
}

func execute(ctx context.Context, client domain.Contract, args []string) error {
	switch args[0] {
	case "status":
		status, err := client.Status(ctx)
		if err != nil {
			return err
		}
		fmt.Println(status)
	case "list":
		infos, err := client.ListUnits(ctx)
		if err != nil {
			return err
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
		printUnits(infos)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("get takes one unit name")
		}
		info, err := client.GetUnit(ctx, args[1])
		if err != nil {
			return err
		}
		printUnit(info)
	case "set":
		if len(args) != 4 {
			return fmt.Errorf("set takes a unit name, a property and a value")
		}
		if err := client.SetProperty(ctx, args[1], args[2], args[3]); err != nil {
			return err
		}
		fmt.Printf("Accepted %s %s=%s\n", args[1], args[2], args[3])
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usage)
	}
	return nil
}

func printUnits(infos []domain.UnitInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASKED\tENABLED\tRUNNING\tPORT\tPENDING")
	for _, info := range infos {
		port := "-"
		if info.HasSocket {
			port = fmt.Sprintf("%d", info.Port)
		}
		fmt.Fprintf(w, "%s\t%t\t%t\t%t\t%s\t%s\n",
			info.Name, info.Masked, info.Enabled, info.Running, port, strings.Join(info.Pending, ","))
	}
	w.Flush()
}

func printUnit(info *domain.UnitInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", info.Name)
	fmt.Fprintf(w, "Policy:\t%s\n", info.Policy)
	fmt.Fprintf(w, "Service:\t%t\n", info.HasService)
	fmt.Fprintf(w, "Socket:\t%t\n", info.HasSocket)
	fmt.Fprintf(w, "Fan-out:\t%t\n", info.FanOut)
	fmt.Fprintf(w, "UnitFileState:\t%s\n", info.UnitFileState)
	fmt.Fprintf(w, "SubState:\t%s\n", info.SubState)
	fmt.Fprintf(w, "Masked:\t%t\n", info.Masked)
	fmt.Fprintf(w, "Enabled:\t%t\n", info.Enabled)
	fmt.Fprintf(w, "Running:\t%t\n", info.Running)
	if info.HasSocket {
		fmt.Fprintf(w, "Listen:\t%s %d\n", info.Protocol, info.Port)
	}
	if len(info.Pending) > 0 {
		fmt.Fprintf(w, "Pending:\t%s\n", strings.Join(info.Pending, ","))
	}
	if info.Suppressed {
		fmt.Fprintf(w, "Suppressed:\ttrue\n")
	}
	w.Flush()
}
