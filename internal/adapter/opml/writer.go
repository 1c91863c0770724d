package opml

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"podopml/internal/domain"
)

const (
	outlineTypeFeed    = "rss"
	outlineTypeEpisode = "rss-item"
)

type opmlXML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    headXML  `xml:"head"`
	Body    bodyXML  `xml:"body"`
}
type headXML struct {
	Title string `xml:"title"`
}
type bodyXML struct {
	Outlines []outlineXML `xml:"outline"`
}

// outlineXML покрывает все три уровня: корневую группу, фид и эпизод.
// Порядок полей задаёт порядок атрибутов в выводе.
type outlineXML struct {
	Type             string       `xml:"type,attr,omitempty"`
	Text             string       `xml:"text,attr"`
	XMLURL           *string      `xml:"xmlUrl,attr,omitempty"`
	ItemGUID         *string      `xml:"itemGuid,attr,omitempty"`
	ItemStatus       *string      `xml:"itemStatus,attr,omitempty"`
	ItemMinRemaining *string      `xml:"itemMinRemaining,attr,omitempty"`
	Outlines         []outlineXML `xml:"outline"`
}

// Options управляет оформлением документа.
type Options struct {
	Version  string
	RootText string
	Indent   string
}

// Writer сериализует domain.Outline в OPML и записывает его на диск.
type Writer struct {
	opts Options
	log  *slog.Logger
}

func NewWriter(opts Options, log *slog.Logger) *Writer {
	return &Writer{
		opts: opts,
		log:  log,
	}
}

// Encode пишет XML-декларацию с кодировкой и дерево документа в w.
func (wr *Writer) Encode(w io.Writer, outline *domain.Outline) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	encoder := xml.NewEncoder(w)
	if wr.opts.Indent != "" {
		encoder.Indent("", wr.opts.Indent)
	}
	if err := encoder.Encode(wr.toXML(outline)); err != nil {
		return fmt.Errorf("failed to encode OPML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush OPML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Save реализует интерфейс usecase.OutlineStorage.
// Документ сначала целиком строится в памяти, затем записывается во временный
// файл рядом с path и переименовывается: path либо не меняется, либо содержит
// полный документ.
func (wr *Writer) Save(ctx context.Context, path string, outline *domain.Outline) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	const op = "adapter.opml.Save"
	log := wr.log.With(slog.String("op", op), slog.String("path", path))

	var buf bytes.Buffer
	if err := wr.Encode(&buf, outline); err != nil {
		log.Error("Failed to render outline", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		log.Error("Failed to write output file", slog.Any("error", err))
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	log.Debug("Output file written", slog.Int("bytes", buf.Len()))
	return nil
}

func (wr *Writer) toXML(outline *domain.Outline) opmlXML {
	root := outlineXML{
		Text:     wr.opts.RootText,
		Outlines: make([]outlineXML, 0, len(outline.Feeds)),
	}
	for _, feed := range outline.Feeds {
		feedNode := outlineXML{
			Type:     outlineTypeFeed,
			Text:     feed.Title,
			XMLURL:   &feed.URL,
			Outlines: make([]outlineXML, 0, len(feed.Episodes)),
		}
		for _, episode := range feed.Episodes {
			feedNode.Outlines = append(feedNode.Outlines, outlineXML{
				Type:             outlineTypeEpisode,
				Text:             episode.URL,
				ItemGUID:         &episode.GUID,
				ItemStatus:       &episode.Status,
				ItemMinRemaining: episode.MinutesRemaining,
			})
		}
		root.Outlines = append(root.Outlines, feedNode)
	}
	return opmlXML{
		Version: wr.opts.Version,
		Head:    headXML{Title: outline.Title},
		Body:    bodyXML{Outlines: []outlineXML{root}},
	}
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".opml-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
