package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"socialgraph-backend/application/commands"
	"socialgraph-backend/application/queries"
	"socialgraph-backend/application/services"
	"socialgraph-backend/infrastructure/config"
	"socialgraph-backend/infrastructure/di"
	"socialgraph-backend/interfaces/http/rest"
)

// withContainer loads the configuration, wires the container, runs fn,
// and tears everything down again.
func withContainer(fn func(ctx context.Context, c *di.Container) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize container: %w", err)
	}
	defer container.Close()
	defer container.Logger.Sync()

	return fn(ctx, container)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the social graph API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			router := rest.NewRouter(c.Config, c.CommandBus, c.QueryBus, c.Metrics, c.Logger)

			srv := &http.Server{
				Addr:         c.Config.ServerAddress,
				Handler:      router.Setup(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("Starting server", zap.String("address", c.Config.ServerAddress))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigChan:
			}

			c.Logger.Info("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(c.Config.ShutdownTimeoutSeconds)*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored graph with the document in <file>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		var doc services.GraphDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse document: %w", err)
		}

		return withContainer(func(ctx context.Context, c *di.Container) error {
			graphCmd := commands.ImportGraphCommand{
				Name:        doc.Name,
				Users:       doc.Users,
				Friendships: doc.Friendships,
			}
			if graphCmd.Name == "" {
				graphCmd.Name = "imported graph"
			}

			if err := c.CommandBus.Send(ctx, graphCmd); err != nil {
				return err
			}

			fmt.Printf("imported %d users and %d friendships\n", len(doc.Users), len(doc.Friendships))
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the stored graph as a portable document to <file>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			result, err := c.QueryBus.Ask(ctx, queries.GraphDataQuery{})
			if err != nil {
				return err
			}
			data, ok := result.(*queries.GraphDataResult)
			if !ok {
				return fmt.Errorf("unexpected query result type %T", result)
			}

			doc := services.GraphDocument{
				Name:       data.Name,
				ExportedAt: time.Now().UTC(),
			}
			for _, u := range data.Users {
				doc.Users = append(doc.Users, commands.ImportedUser{ID: u.ID, Label: u.Label})
			}
			for _, f := range data.Friendships {
				doc.Friendships = append(doc.Friendships, commands.ImportedFriendship{
					SourceID: f.SourceID,
					TargetID: f.TargetID,
				})
			}

			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], out, 0644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}

			fmt.Printf("exported %d users and %d friendships to %s\n", len(doc.Users), len(doc.Friendships), args[0])
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics about the stored graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(ctx context.Context, c *di.Container) error {
			result, err := c.QueryBus.Ask(ctx, queries.GraphStatsQuery{})
			if err != nil {
				return err
			}
			stats, ok := result.(*queries.GraphStatsResult)
			if !ok {
				return fmt.Errorf("unexpected query result type %T", result)
			}

			fmt.Printf("users:        %d\n", stats.UserCount)
			fmt.Printf("friendships:  %d\n", stats.FriendshipCount)
			fmt.Printf("communities:  %d\n", stats.CommunityCount)
			fmt.Printf("isolated:     %d\n", stats.IsolatedUsers)
			fmt.Printf("max degree:   %d\n", stats.MaxDegree)
			fmt.Printf("avg degree:   %.2f\n", stats.AverageDegree)
			return nil
		})
	},
}
