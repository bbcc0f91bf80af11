package iobes

import "github.com/pkg/errors"

// ConvertTags re-encodes a tag sequence from one scheme to another by
// parsing it into spans and writing those spans back out. Going through
// spans is the only general conversion strategy: the right output marker can
// depend on neighboring tokens (IOB's B rule, or whether a span turns out to
// be a singleton), so no per-tag lookup table works. The policy governs the
// parse step only.
func ConvertTags(tags []string, from, to Scheme, policy Policy) ([]string, error) {
	result, err := ParseSpans(tags, from, policy)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %s tags to %s", from, to)
	}
	return WriteTags(result.Spans, len(tags), to)
}

// Pairwise strict conversions between the five schemes. These fail on any
// grammar violation in the input; use ConvertTags with Coerce or KeepGoing
// to convert messy data.

// IOBToBIO converts IOB tags to the BIO format.
func IOBToBIO(tags []string) ([]string, error) { return ConvertTags(tags, IOB, BIO, Strict) }

// IOBToIOBES converts IOB tags to the IOBES format.
func IOBToIOBES(tags []string) ([]string, error) { return ConvertTags(tags, IOB, IOBES, Strict) }

// IOBToBILOU converts IOB tags to the BILOU format.
func IOBToBILOU(tags []string) ([]string, error) { return ConvertTags(tags, IOB, BILOU, Strict) }

// IOBToBMEWO converts IOB tags to the BMEWO format.
func IOBToBMEWO(tags []string) ([]string, error) { return ConvertTags(tags, IOB, BMEWO, Strict) }

// BIOToIOB converts BIO tags to the IOB format.
func BIOToIOB(tags []string) ([]string, error) { return ConvertTags(tags, BIO, IOB, Strict) }

// BIOToIOBES converts BIO tags to the IOBES format.
func BIOToIOBES(tags []string) ([]string, error) { return ConvertTags(tags, BIO, IOBES, Strict) }

// BIOToBILOU converts BIO tags to the BILOU format.
func BIOToBILOU(tags []string) ([]string, error) { return ConvertTags(tags, BIO, BILOU, Strict) }

// BIOToBMEWO converts BIO tags to the BMEWO format.
func BIOToBMEWO(tags []string) ([]string, error) { return ConvertTags(tags, BIO, BMEWO, Strict) }

// IOBESToIOB converts IOBES tags to the IOB format.
func IOBESToIOB(tags []string) ([]string, error) { return ConvertTags(tags, IOBES, IOB, Strict) }

// IOBESToBIO converts IOBES tags to the BIO format.
func IOBESToBIO(tags []string) ([]string, error) { return ConvertTags(tags, IOBES, BIO, Strict) }

// IOBESToBILOU converts IOBES tags to the BILOU format.
func IOBESToBILOU(tags []string) ([]string, error) { return ConvertTags(tags, IOBES, BILOU, Strict) }

// IOBESToBMEWO converts IOBES tags to the BMEWO format.
func IOBESToBMEWO(tags []string) ([]string, error) { return ConvertTags(tags, IOBES, BMEWO, Strict) }

// BILOUToIOB converts BILOU tags to the IOB format.
func BILOUToIOB(tags []string) ([]string, error) { return ConvertTags(tags, BILOU, IOB, Strict) }

// BILOUToBIO converts BILOU tags to the BIO format.
func BILOUToBIO(tags []string) ([]string, error) { return ConvertTags(tags, BILOU, BIO, Strict) }

// BILOUToIOBES converts BILOU tags to the IOBES format.
func BILOUToIOBES(tags []string) ([]string, error) { return ConvertTags(tags, BILOU, IOBES, Strict) }

// BILOUToBMEWO converts BILOU tags to the BMEWO format.
func BILOUToBMEWO(tags []string) ([]string, error) { return ConvertTags(tags, BILOU, BMEWO, Strict) }

// BMEWOToIOB converts BMEWO tags to the IOB format.
func BMEWOToIOB(tags []string) ([]string, error) { return ConvertTags(tags, BMEWO, IOB, Strict) }

// BMEWOToBIO converts BMEWO tags to the BIO format.
func BMEWOToBIO(tags []string) ([]string, error) { return ConvertTags(tags, BMEWO, BIO, Strict) }

// BMEWOToIOBES converts BMEWO tags to the IOBES format.
func BMEWOToIOBES(tags []string) ([]string, error) { return ConvertTags(tags, BMEWO, IOBES, Strict) }

// BMEWOToBILOU converts BMEWO tags to the BILOU format.
func BMEWOToBILOU(tags []string) ([]string, error) { return ConvertTags(tags, BMEWO, BILOU, Strict) }
