package output

// TSVHeader is the header row for record text output. Column order follows
// api.SequenceV1.
const TSVHeader = "customer_label\tsequence_type\tsequence_encoding\tsequence_length\tsequence_length_range\tmodified\tproduct_sequence\tcustomer_sequence\tfour_letter_sequence"

// CheckTSVHeader is the header row for oligoseq-check text output.
const CheckTSVHeader = "source\tlabel\tsequence_type\tsequence_encoding\tvalid\tlength\tmessage"
