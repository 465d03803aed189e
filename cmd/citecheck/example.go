// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show example usage and supported citation formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(exampleText)
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

const exampleText = `citecheck — example usage

SUPPORTED FORMATS:

1. APA / Harvard / Chicago (author-year)
   In-text: (Smith, 2020), (Smith 2020), Johnson et al. (2021)
   Bibliography: Smith, J. (2020). Title of work. Publisher.

2. MLA (author-page)
   In-text: (Author 123) or (Author et al. 45-67)
   Bibliography: Author, First. "Title of Work." Publisher, 2020.

3. IEEE / numeric
   In-text: [1] or [1-3] or [1,2,5]
   Bibliography: [1] J. Smith, "Title," Journal, vol. 1, 2020.

EXAMPLE DOCUMENT:

  Recent studies (Smith, 2020) show that citations are important.
  Multiple researchers agree (Johnson et al., 2021; Williams, 2019).
  Some findings are controversial [3].

  References:
  Smith, J. (2020). A Study on Citations. Journal of Research.
  Johnson, M., Lee, K., & Chen, R. (2021). Advanced Methods. Science Press.
  Williams, A. (2019). Research Methodology. Academic Publishers.

USAGE:

  # Check a document
  citecheck check manuscript.txt

  # Use a custom bibliography section name
  citecheck check paper.txt --bib-section "Works Cited"

  # Save a report file (YAML when the extension is .yaml)
  citecheck check thesis.docx --output report.txt

  # Record the run and browse history later
  citecheck check article.md --record
  citecheck history list

  # Full-screen interactive mode
  citecheck interactive
`
