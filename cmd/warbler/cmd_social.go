package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <username> <text>",
	Short: "Post a message as a user",
	Args:  cobra.ExactArgs(2),
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

		msg, err := a.messages.Post(ctx, user.ID, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("posted %s\n", msg.ID)
		return nil
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <follower> <followed>",
	Short: "Make one user follow another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		follower, err := a.resolveUser(ctx, args[0])
		if err != nil {
			return err
		}
		followed, err := a.resolveUser(ctx, args[1])
		if err != nil {
			return err
		}

		if err := a.follows.Follow(ctx, follower.ID, followed.ID); err != nil {
			return err
		}
		fmt.Printf("@%s now follows @%s\n", follower.Username, followed.Username)
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <follower> <followed>",
	Short: "Remove a follow edge; no-op if absent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		follower, err := a.resolveUser(ctx, args[0])
		if err != nil {
			return err
		}
		followed, err := a.resolveUser(ctx, args[1])
		if err != nil {
			return err
		}

		removed, err := a.follows.Unfollow(ctx, follower.ID, followed.ID)
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("@%s no longer follows @%s\n", follower.Username, followed.Username)
		} else {
			fmt.Printf("@%s was not following @%s\n", follower.Username, followed.Username)
		}
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <username> <message-id>",
	Short: "Toggle a like on a message",
	Args:  cobra.ExactArgs(2),
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

		messageID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("parsing message id: %w", err)
		}

		liked, err := a.likes.Toggle(ctx, user.ID, messageID)
		if err != nil {
			return err
		}
		if liked {
			fmt.Printf("@%s liked %s\n", user.Username, messageID)
		} else {
			fmt.Printf("@%s unliked %s\n", user.Username, messageID)
		}
		return nil
	},
}
