/*
	the bamcov package counts coverage and variant supporting reads at a set of
	mutation loci in a BAM file, producing the raw read counts consumed by the
	dual mutation table
*/
package bamcov

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/bgzf"
	"github.com/biogo/hts/sam"
)

// Locus is one mutation position to count reads at
type Locus struct {
	Chrom string `json:"chrom"`
	Pos   int    `json:"pos"`
	Alt   byte   `json:"alt"`
	Gene  string `json:"gene"`
}

// Counts holds the per-locus read counts of one sample
type Counts struct {
	Sample   string  `json:"sample"`
	Loci     []Locus `json:"loci"`
	Coverage []int   `json:"coverage"`
	MutReads []int   `json:"mut_reads"`
}

// Count reads a BAM file (or STDIN when no file is given) and counts, for each
// locus, the reads with an aligned base (coverage) and the reads supporting
// the variant allele
func Count(inputFile string, loci []Locus) (*Counts, error) {
	// create a BAM reader from either STDIN or a BAM file
	var r io.Reader
	if inputFile == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("could not open BAM file: %v", err)
		}
		defer f.Close()
		ok, err := bgzf.HasEOF(f)
		if err != nil {
			return nil, fmt.Errorf("could not open BAM file: %v", err)
		}
		if !ok {
			log.Printf("file %q has no bgzf magic block: may be truncated", inputFile)
		}
		r = f
	}
	b, err := bam.NewReader(r, 0)
	if err != nil {
		return nil, fmt.Errorf("could not read BAM file: %v", err)
	}
	defer b.Close()

	// group the loci by chromosome for the record sweep
	byChrom := make(map[string][]int)
	for i, locus := range loci {
		byChrom[locus.Chrom] = append(byChrom[locus.Chrom], i)
	}

	counts := &Counts{
		Sample:   inputFile,
		Loci:     loci,
		Coverage: make([]int, len(loci)),
		MutReads: make([]int, len(loci)),
	}

	// process the records
	for {
		record, err := b.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading bam: %v", err)
		}
		// ignore unaligned
		if record.Flags&sam.Unmapped != 0 {
			continue
		}
		for _, locusIdx := range byChrom[record.Ref.Name()] {
			locus := loci[locusIdx]
			if locus.Pos < record.Pos || locus.Pos >= record.End() {
				continue
			}
			base, aligned := baseAt(record, locus.Pos)
			if !aligned {
				continue
			}
			counts.Coverage[locusIdx]++
			if locus.Alt != 0 && upper(base) == upper(locus.Alt) {
				counts.MutReads[locusIdx]++
			}
		}
	}
	return counts, nil
}

// baseAt walks the CIGAR of a record and returns the read base aligned at a
// reference position; aligned is false when a deletion or skip spans it
func baseAt(record *sam.Record, refPos int) (base byte, aligned bool) {
	refOffset := record.Pos
	queryOffset := 0
	bases := record.Seq.Expand()
	for _, op := range record.Cigar {
		consumes := op.Type().Consumes()
		opLen := op.Len()
		if consumes.Reference == 1 && refPos >= refOffset && refPos < refOffset+opLen {
			if consumes.Query == 1 {
				return bases[queryOffset+(refPos-refOffset)], true
			}
			return 0, false
		}
		refOffset += opLen * consumes.Reference
		queryOffset += opLen * consumes.Query
	}
	return 0, false
}

// upper folds a nucleotide to upper case
func upper(base byte) byte {
	if base >= 'a' && base <= 'z' {
		return base - 32
	}
	return base
}

// WriteTSV prints the counts table
func (Counts *Counts) WriteTSV(w io.Writer) error {
	for i, locus := range Counts.Loci {
		if _, err := fmt.Fprintf(w, "%v\t%v\t%d\t%d\t%d\n", locus.Gene, locus.Chrom, locus.Pos, Counts.Coverage[i], Counts.MutReads[i]); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes the counts to a JSON file
func (Counts *Counts) Dump(path string) error {
	b, err := json.MarshalIndent(Counts, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}
