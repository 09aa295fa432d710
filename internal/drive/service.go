package drive

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Service wraps read-only access to the Google Drive folder where staff
// keep the offline sales register spreadsheets.
type Service struct {
	srv *drive.Service
}

func NewService(credentialsJSON string) (*Service, error) {
	config, err := google.JWTConfigFromJSON(
		[]byte(credentialsJSON),
		drive.DriveReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to parse drive credentials: %w", err)
	}

	client := config.Client(context.Background())

	srv, err := drive.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to build drive client: %w", err)
	}

	return &Service{srv: srv}, nil
}

type File struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	Size         int64  `json:"size,string,omitempty"`
}

// ListFiles lists the files inside a folder, excluding trashed ones.
func (s *Service) ListFiles(folderID string) ([]*File, error) {
	if folderID == "" {
		folderID = "root"
	}

	result, err := s.srv.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed=false", folderID)).
		Fields("files(id, name, mimeType, modifiedTime, size)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list drive files: %w", err)
	}

	files := make([]*File, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, &File{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			ModifiedTime: f.ModifiedTime,
			Size:         f.Size,
		})
	}

	return files, nil
}

// DownloadFile streams a file's content into w. Google-native spreadsheets
// are exported as CSV; everything else is downloaded as-is.
func (s *Service) DownloadFile(file *File, w io.Writer) error {
	var resp io.ReadCloser
	if file.MimeType == "application/vnd.google-apps.spreadsheet" {
		httpResp, err := s.srv.Files.Export(file.ID, "text/csv").Download()
		if err != nil {
			return fmt.Errorf("unable to export %s: %w", file.Name, err)
		}
		resp = httpResp.Body
	} else {
		httpResp, err := s.srv.Files.Get(file.ID).Download()
		if err != nil {
			return fmt.Errorf("unable to download %s: %w", file.Name, err)
		}
		resp = httpResp.Body
	}
	defer resp.Close()

	if _, err := io.Copy(w, resp); err != nil {
		return fmt.Errorf("unable to read %s: %w", file.Name, err)
	}
	return nil
}
