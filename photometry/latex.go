package photometry

import (
	"fmt"
	"strings"
)

// LaTeXTable renders the disk fits as a booktabs table, ready to paste into
// a report.
func LaTeXTable(fits []*DiskFit) string {
	b := &strings.Builder{}

	b.WriteString("\\begin{table}[h!]\n")
	b.WriteString("    \\centering\n")
	b.WriteString("    \\caption{Exponential disk fits.}\n")
	b.WriteString("    \\begin{tabular}{lccc}\n")
	b.WriteString("        \\toprule\n")
	b.WriteString("        \\textbf{Band} & \\textbf{$H_r$ (arcsec)} & " +
		"\\textbf{$H_r$ (kpc)} & \\textbf{$\\mu_0$} \\\\\n")
	b.WriteString("        \\midrule\n")

	for _, f := range fits {
		fmt.Fprintf(b,
			"        %s & $%.2f \\pm %.2f$ & $%.2f \\pm %.2f$ & "+
				"$%.2f \\pm %.2f$ \\\\\n",
			f.Band, f.HArcsec, f.HArcsecErr,
			f.HKpc, f.HKpcErr, f.Mu0, f.Mu0Err,
		)
	}

	b.WriteString("        \\bottomrule\n")
	b.WriteString("    \\end{tabular}\n")
	b.WriteString("\\end{table}\n")
	return b.String()
}
