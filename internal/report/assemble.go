// Package report turns classified input files into titled, coloured project
// reports ready for layout.
package report

import (
	"github.com/alexanderramin/hoursreport/internal/classify"
	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
)

// Input is one parsed source file.
type Input struct {
	SourceFile string
	Sessions   []domain.Session
}

// Assembler builds project reports with a given palette.
type Assembler struct {
	Palette Palette
}

// Assemble classifies each input independently and assigns titles and
// colours. Output order matches input order.
func (a Assembler) Assemble(inputs []Input, cfg projectconfig.ProjectConfig) []domain.ProjectReport {
	titles := NewTitler()
	reports := make([]domain.ProjectReport, 0, len(inputs))
	for i, in := range inputs {
		colors := a.Palette.At(i)
		reports = append(reports, domain.ProjectReport{
			Identity: domain.ProjectIdentity{
				Title:          titles.Unique(TitleFromFilename(in.SourceFile)),
				PrimaryColor:   colors.Primary,
				SecondaryColor: colors.Secondary,
			},
			SourceFile: in.SourceFile,
			Categories: classify.Classify(in.Sessions, cfg),
			Dropped:    classify.Unlabeled(in.Sessions, cfg),
		})
	}
	return reports
}

// Assemble uses the default palette.
func Assemble(inputs []Input, cfg projectconfig.ProjectConfig) []domain.ProjectReport {
	return Assembler{Palette: DefaultPalette}.Assemble(inputs, cfg)
}
