package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/starklab/starkgo/archive"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE...",
	Short: "Archive storage files to a blob backend",
	Long: "export uploads completed storage files to an archive backend for\n" +
		"backup and sharing. Backends: local (directory), s3, minio.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch NAME DEST",
	Short: "Download an archived storage file",
	Args:  cobra.ExactArgs(2),
	RunE:  runFetch,
}

func init() {
	for _, cmd := range []*cobra.Command{exportCmd, fetchCmd} {
		cmd.Flags().String("backend", "local", "archive backend: local, s3 or minio")
		cmd.Flags().String("dest", "", "local root directory or bucket name")
		cmd.Flags().String("archive-prefix", "", "object name prefix inside the backend")
		cmd.Flags().String("endpoint", "", "minio endpoint host:port")
		cmd.Flags().Bool("secure", true, "use TLS for the minio endpoint")
	}
	exportCmd.Flags().Float64("put-rate", 0, "limit uploads to n objects per second (0 = unlimited)")
	exportCmd.Flags().Int("concurrency", 4, "parallel uploads")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fetchCmd)
}

func archiveStore(ctx context.Context, cmd *cobra.Command) (archive.Store, error) {
	backend, _ := cmd.Flags().GetString("backend")
	dest, _ := cmd.Flags().GetString("dest")
	prefix, _ := cmd.Flags().GetString("archive-prefix")
	if dest == "" {
		return nil, fmt.Errorf("--dest is required")
	}

	switch backend {
	case "local":
		return archive.NewLocal(filepath.Join(dest, prefix)), nil
	case "s3":
		return archive.NewS3FromConfig(ctx, dest, prefix)
	case "minio":
		endpoint, _ := cmd.Flags().GetString("endpoint")
		secure, _ := cmd.Flags().GetBool("secure")
		if endpoint == "" {
			return nil, fmt.Errorf("--endpoint is required for the minio backend")
		}
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewEnvMinio(),
			Secure: secure,
		})
		if err != nil {
			return nil, err
		}
		return archive.NewMinio(client, dest, prefix), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, err := archiveStore(ctx, cmd)
	if err != nil {
		return err
	}

	var opts []archive.UploaderOption
	if rate, _ := cmd.Flags().GetFloat64("put-rate"); rate > 0 {
		opts = append(opts, archive.WithPutRate(rate))
	}
	if n, _ := cmd.Flags().GetInt("concurrency"); n > 0 {
		opts = append(opts, archive.WithConcurrency(n))
	}
	up := archive.NewUploader(store, opts...)

	files := make(map[string]string, len(args))
	for _, path := range args {
		files[filepath.Base(path)] = path
	}
	if err := up.UploadFiles(ctx, files); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "archived %d file(s)\n", len(files))
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, err := archiveStore(ctx, cmd)
	if err != nil {
		return err
	}
	return archive.Fetch(ctx, store, args[0], args[1])
}
