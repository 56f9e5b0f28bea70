package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"licenca_flow_go/config"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFOptions contains options for PDF generation
type PDFOptions struct {
	PageSize     string // A4, letter
	MarginTop    int    // points (72 = 1 inch)
	MarginBottom int
	MarginLeft   int
	MarginRight  int
}

// DefaultPDFOptions returns the options used for submission receipts
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		PageSize:     "A4",
		MarginTop:    72,
		MarginBottom: 72,
		MarginLeft:   72,
		MarginRight:  72,
	}
}

// GeneratePDF renders HTML content to PDF using headless Chrome
func GeneratePDF(cfg *config.Config, htmlContent string, options PDFOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	// Custom Chrome path (headless-shell in Docker)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer allocCancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var paperWidth, paperHeight float64
	switch options.PageSize {
	case "letter":
		paperWidth = 8.5
		paperHeight = 11.0
	default: // A4
		paperWidth = 8.27
		paperHeight = 11.69
	}

	// Convert points to inches for margins
	marginTop := float64(options.MarginTop) / 72.0
	marginBottom := float64(options.MarginBottom) / 72.0
	marginLeft := float64(options.MarginLeft) / 72.0
	marginRight := float64(options.MarginRight) / 72.0

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.Sleep(100 * time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(marginTop).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginLeft).
				WithMarginRight(marginRight).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// BuildReceiptHTML renders the submission receipt document for a process
// snapshot
func BuildReceiptHTML(snapshot *ProcessSnapshot) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>
body { font-family: Georgia, serif; color: #1a1a1a; }
h1 { font-size: 20px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
h2 { font-size: 15px; margin-top: 24px; }
table { width: 100%; border-collapse: collapse; font-size: 12px; }
td, th { border: 1px solid #999; padding: 6px 8px; text-align: left; }
.meta { font-size: 12px; color: #555; }
</style></head><body>`)

	proc := snapshot.Process
	fmt.Fprintf(&b, "<h1>Comprovante de Inscrição — Processo nº %d</h1>", proc.ID)
	fmt.Fprintf(&b, `<p class="meta">Status: %s</p>`, html.EscapeString(proc.Status))
	if proc.SubmittedAt != nil {
		fmt.Fprintf(&b, `<p class="meta">Submetido em: %s</p>`, proc.SubmittedAt.Format("02/01/2006 15:04"))
	}

	b.WriteString("<h2>Participantes</h2><table><tr><th>Nome</th><th>CPF/CNPJ</th><th>Papel</th></tr>")
	for _, p := range snapshot.Participants {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(p.Person.NomeRazao),
			html.EscapeString(p.Person.CpfCnpj),
			html.EscapeString(p.RoleDisplayName()),
		)
	}
	b.WriteString("</table>")

	if snapshot.Property != nil {
		prop := snapshot.Property
		b.WriteString("<h2>Imóvel</h2><table>")
		fmt.Fprintf(&b, "<tr><th>Tipo</th><td>%s</td></tr>", html.EscapeString(prop.Kind))
		if prop.HasUTM() {
			fmt.Fprintf(&b, "<tr><th>Coordenadas (UTM)</th><td>%s, %s</td></tr>",
				html.EscapeString(*prop.UtmLat), html.EscapeString(*prop.UtmLong))
		} else if prop.HasDMS() {
			fmt.Fprintf(&b, "<tr><th>Coordenadas (DMS)</th><td>%s, %s</td></tr>",
				html.EscapeString(*prop.DmsLat), html.EscapeString(*prop.DmsLong))
		}
		if prop.CarCodigo != nil {
			fmt.Fprintf(&b, "<tr><th>CAR</th><td>%s</td></tr>", html.EscapeString(*prop.CarCodigo))
		}
		b.WriteString("</table>")
	}

	if snapshot.Atividade != nil {
		fmt.Fprintf(&b, "<h2>Atividade</h2><p>%s — %s</p>",
			html.EscapeString(snapshot.Atividade.Codigo),
			html.EscapeString(snapshot.Atividade.Nome),
		)
	}

	b.WriteString("</body></html>")
	return b.String()
}

// GenerateSubmissionReceipt renders the receipt PDF for a submitted process
func GenerateSubmissionReceipt(cfg *config.Config, snapshot *ProcessSnapshot) ([]byte, error) {
	return GeneratePDF(cfg, BuildReceiptHTML(snapshot), DefaultPDFOptions())
}
