package bamcov

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/io/featio/bed"
)

// LoadBED reads the mutation loci from a BED4 file. The name field carries
// the gene name, optionally followed by ":<base>" naming the variant allele;
// without an allele only coverage is counted at the locus.
func LoadBED(path string) ([]Locus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader, err := bed.NewReader(f, 4)
	if err != nil {
		return nil, fmt.Errorf("could not read BED file: %v", err)
	}
	loci := []Locus{}
	for {
		feature, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading BED file: %v", err)
		}
		gene, alt := parseLocusName(feature.Name())
		loci = append(loci, Locus{
			Chrom: feature.Location().Name(),
			Pos:   feature.Start(),
			Alt:   alt,
			Gene:  gene,
		})
	}
	if len(loci) == 0 {
		return nil, fmt.Errorf("no loci found in BED file: %v", path)
	}
	return loci, nil
}

// parseLocusName splits an optional variant allele off a BED name field
func parseLocusName(name string) (string, byte) {
	if colonIdx := strings.LastIndex(name, ":"); colonIdx != -1 && len(name)-colonIdx == 2 {
		return name[:colonIdx], upper(name[colonIdx+1])
	}
	return name, 0
}
