package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warblerhq/warbler/internal/service"
)

var (
	signupImageURL string
	signupLocation string
)

var signupCmd = &cobra.Command{
	Use:   "signup <username> <email> <password>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.auth.Register(ctx, service.SignupInput{
			Username: args[0],
			Email:    args[1],
			Password: args[2],
			ImageURL: signupImageURL,
			Location: signupLocation,
		})
		if err != nil {
			return err
		}

		fmt.Println(user)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// newApp migrates on every start; this command exists so the
		// schema can be created explicitly, e.g. before seeding.
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Println("schema up to date")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Show a user's profile stats and messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.resolveUser(ctx, args[0])
		if err != nil {
			return err
		}

		stats, err := a.profiles.Stats(ctx, user.ID)
		if err != nil {
			return err
		}

		fmt.Println(user)
		fmt.Printf("messages: %d  following: %d  followers: %d  likes: %d\n",
			stats.Messages, stats.Following, stats.Followers, stats.Likes)

		msgs, err := a.messages.MessagesOf(ctx, user.ID)
		if err != nil {
			return err
		}
		for _, msg := range msgs {
			count, err := a.likes.LikeCount(ctx, msg.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s  [%s]  (%d likes)  %s\n",
				msg.ID, msg.CreatedAt.Format("2006-01-02 15:04"), count, msg.Text)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find users by username; no query lists everyone",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		q := ""
		if len(args) == 1 {
			q = args[0]
		}

		users, err := a.profiles.Search(ctx, q)
		if err != nil {
			return err
		}
		for _, user := range users {
			fmt.Printf("@%s\t%s\n", user.Username, user.Email)
		}
		return nil
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <username>",
	Short: "Delete a user and everything they own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.resolveUser(ctx, args[0])
		if err != nil {
			return err
		}

		if err := a.users.Delete(ctx, user.ID); err != nil {
			return err
		}
		fmt.Printf("deleted @%s\n", user.Username)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupImageURL, "image-url", "", "profile image URL")
	signupCmd.Flags().StringVar(&signupLocation, "location", "", "profile location")
}
