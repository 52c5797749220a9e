package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/appliedlogix/component-requests/internal/config"
	"github.com/appliedlogix/component-requests/internal/request"
	"github.com/appliedlogix/component-requests/internal/request/storage"
)

// ConfigPath is bound to the root --config flag in main.
var ConfigPath string

// withService wires config -> store -> service for one command invocation
// and guarantees the connection is released when the command returns.
func withService(ctx context.Context, fn func(*request.Service) error) error {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := storage.Connect(ctx, *cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer repo.Close(context.Background())

	return fn(request.NewService(repo))
}

func parseID(arg string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(arg)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid request id %q: %w", arg, err)
	}
	return id, nil
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new component request",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		p := request.Params{}
		p.Requester, _ = cmd.Flags().GetString("requester")
		p.Project, _ = cmd.Flags().GetString("project")
		p.Task, _ = cmd.Flags().GetString("task")
		p.ConcordFolder, _ = cmd.Flags().GetString("folder")

		status, _ := cmd.Flags().GetString("status")
		p.Status = request.Status(status)
		reqType, _ := cmd.Flags().GetString("type")
		p.RequestType = request.Type(reqType)
		librarian, _ := cmd.Flags().GetString("librarian")
		p.Librarian = request.Librarian(librarian)
		solution, _ := cmd.Flags().GetString("solution")
		p.Solution = request.Solution(solution)

		p.ConcordID = optionalFlag(cmd, "concord-id")
		p.Manufacturer = optionalFlag(cmd, "manufacturer")
		p.PartNumber = optionalFlag(cmd, "part-number")
		p.ManufacturerLink = optionalFlag(cmd, "link")
		p.ConcordFootprintID = optionalFlag(cmd, "footprint-id")
		p.FootprintName = optionalFlag(cmd, "footprint-name")

		return withService(ctx, func(svc *request.Service) error {
			r, err := svc.Create(ctx, p)
			if err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}
			fmt.Printf("✓ Created request %s (%s)\n", r.ID.Hex(), r.Status)
			return nil
		})
	},
}

// optionalFlag returns nil when the flag was not set, so absent fields stay
// absent in the document.
func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Persist the canonical sample request (pipeline smoke test)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		return withService(ctx, func(svc *request.Service) error {
			r, err := svc.CreateSample(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed sample request: %w", err)
			}
			fmt.Printf("✓ Seeded sample request %s\n", r.ID.Hex())
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all component requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		return withService(ctx, func(svc *request.Service) error {
			requests, err := svc.ListAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to list requests: %w", err)
			}

			if len(requests) == 0 {
				fmt.Println("No requests found")
				return nil
			}

			fmt.Printf("Found %d request(s):\n\n", len(requests))
			for _, r := range requests {
				fmt.Printf("%s  %-16s %-20s %s", r.ID.Hex(),
					statusColor(r.Status).Sprint(r.Status),
					r.RequestType, r.Librarian)
				if r.PartNumber != nil {
					fmt.Printf("  %s", *r.PartNumber)
				}
				fmt.Println()
			}
			return nil
		})
	},
}

func statusColor(s request.Status) *color.Color {
	switch s {
	case request.StatusNew:
		return color.New(color.FgCyan)
	case request.StatusInProgress, request.StatusNeedsFootprint, request.StatusQC:
		return color.New(color.FgYellow)
	case request.StatusComplete:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgRed)
	}
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status [id] [status]",
	Short: "Move a request to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status := request.Status(args[1])

		return withService(ctx, func(svc *request.Service) error {
			if err := svc.UpdateStatus(ctx, id, status); err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}
			fmt.Printf("✓ Request %s is now %s\n", id.Hex(), status)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Permanently delete a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		return withService(ctx, func(svc *request.Service) error {
			if err := svc.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete request: %w", err)
			}
			fmt.Printf("✓ Deleted request %s\n", id.Hex())
			return nil
		})
	},
}

func init() {
	f := createCmd.Flags()
	f.String("requester", "", "Name of the person making the request")
	f.String("status", string(request.StatusNew), fmt.Sprintf("Status %v", request.Statuses()))
	f.String("type", string(request.TypeComponentFull), fmt.Sprintf("Request type %v", request.Types()))
	f.String("librarian", string(request.LibrarianRaymondGlover), fmt.Sprintf("Librarian %v", request.Librarians()))
	f.String("project", "", "Project the request is for")
	f.String("task", "", "Task within the project")
	f.String("concord-id", "", "Concord ID of the requested component")
	f.String("folder", "", "Concord folder the component belongs to")
	f.String("manufacturer", "", "Component manufacturer")
	f.String("part-number", "", "Manufacturer part number")
	f.String("link", "", "URL of the component data sheet")
	f.String("solution", string(request.SolutionExisting), fmt.Sprintf("Solution method %v", request.Solutions()))
	f.String("footprint-id", "", "Concord footprint ID")
	f.String("footprint-name", "", "Footprint name")
}

// CreateCmd returns the create command.
func CreateCmd() *cobra.Command { return createCmd }

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command { return seedCmd }

// ListCmd returns the list command.
func ListCmd() *cobra.Command { return listCmd }

// SetStatusCmd returns the set-status command.
func SetStatusCmd() *cobra.Command { return setStatusCmd }

// DeleteCmd returns the delete command.
func DeleteCmd() *cobra.Command { return deleteCmd }
