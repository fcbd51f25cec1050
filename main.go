package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/postsync/cli/cmd"
	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "postsync",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Keep CMS posts in step with a GitHub repository",
	Long:          "Fetch posts, trees and blobs from a GitHub repository and serve them to your CMS.",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
				os.Exit(2)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func addPostFlags(c *cobra.Command) {
	c.Flags().String("name", "", "Post slug, used when no path is given")
	c.Flags().String("type", "post", "Post type")
	c.Flags().String("status", "publish", "Post status")
	c.Flags().String("date", "", "Post date (YYYY-MM-DD), required for posts")
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentPreRunE = contextualize(handler.Setup, handler.Panic)
	rootCmd.PersistentFlags().Bool("json", false, "Print machine readable output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")

	initCmd := &cobra.Command{
		Use:   "init [owner/repo] [branch]",
		Short: "Link the working directory to a repository",
		Args:  cobra.MaximumNArgs(2),
		RunE:  contextualize(handler.Init, handler.Panic),
	}
	initCmd.Flags().String("api-url", "", "GitHub API base URL (GitHub Enterprise)")
	initCmd.Flags().String("web-url", "", "GitHub web URL used for view and edit links")
	initCmd.Flags().String("token", "", "Store an access token in the user config")
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the linked repository and cache",
		RunE:  contextualize(handler.Status, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "compare <sha>",
		Short: "List files changed between a commit and the branch",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.Compare, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tree [sha]",
		Short: "List every file in a tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Tree, handler.Panic),
	})

	blobCmd := &cobra.Command{
		Use:   "blob <sha> [path]",
		Short: "Print the content of a blob",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  contextualize(handler.Blob, handler.Panic),
	}
	blobCmd.Flags().Bool("meta", false, "Print the front matter only")
	blobCmd.Flags().Bool("body", false, "Print the content without front matter")
	rootCmd.AddCommand(blobCmd)

	existsCmd := &cobra.Command{
		Use:   "exists [path]",
		Short: "Check whether a post exists in the repository",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Exists, handler.Panic),
	}
	addPostFlags(existsCmd)
	rootCmd.AddCommand(existsCmd)

	contentsCmd := &cobra.Command{
		Use:   "contents [path]",
		Short: "Show a post as stored in the repository",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Contents, handler.Panic),
	}
	addPostFlags(contentsCmd)
	rootCmd.AddCommand(contentsCmd)

	lsCmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory of the repository",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.List, handler.Panic),
	}
	lsCmd.Flags().String("ref", "", "Branch, tag or commit to list (default: linked branch)")
	rootCmd.AddCommand(lsCmd)

	pullCmd := &cobra.Command{
		Use:   "pull [sha]",
		Short: "Write every file of a tree to a local directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Pull, handler.Panic),
	}
	pullCmd.Flags().String("dir", ".", "Directory to write into")
	pullCmd.Flags().StringSlice("ignore", nil, "Gitignore-style pattern to skip (repeatable)")
	pullCmd.Flags().String("ignore-file", ".postsyncignore", "File of gitignore-style patterns to skip")
	rootCmd.AddCommand(pullCmd)

	urlsCmd := &cobra.Command{
		Use:   "urls [path]",
		Short: "Print the view and edit URLs of a post",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.URLs, handler.Panic),
	}
	addPostFlags(urlsCmd)
	rootCmd.AddCommand(urlsCmd)

	openCmd := &cobra.Command{
		Use:   "open [path]",
		Short: "Open the repository or a post on GitHub",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Open, handler.Panic),
	}
	openCmd.Flags().Bool("edit", false, "Open the editor instead of the file view")
	addPostFlags(openCmd)
	rootCmd.AddCommand(openCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the repository to a CMS over HTTP",
		RunE:  contextualize(handler.Serve, handler.Panic),
	}
	serveCmd.Flags().String("addr", "127.0.0.1:8787", "Address to listen on")
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get the version of the postsync CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE:                  contextualize(handler.Completion, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"postsync --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
