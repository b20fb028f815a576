package options

import (
	"github.com/spf13/cobra"

	"github.com/renraku-cli/renraku/pkg/record"
)

// FieldOptions captures the ten record field flags.
type FieldOptions struct {
	Record record.Record
}

type fieldFlag struct {
	name  string
	usage string
}

var fieldFlags = []fieldFlag{
	{"men-go", "Men's departure time/place."},
	{"men-return", "Men's return time/place."},
	{"men-balls", "Men's ball count."},
	{"women-go", "Women's departure time/place."},
	{"women-return", "Women's return time/place."},
	{"women-balls", "Women's ball count."},
	{"others-go", "Others' departure time/place."},
	{"others-return", "Others' return time/place."},
	{"others-balls", "Others' ball count."},
	{"unneeded", "Items that are not needed that day."},
}

// AddFieldArgs wires one flag per record field on the provided command.
func AddFieldArgs(cmd *cobra.Command, o *FieldOptions) {
	for i, f := range o.Record.Fields() {
		cmd.Flags().StringVar(f, fieldFlags[i].name, "", fieldFlags[i].usage)
	}
}

// Overlay copies every flag the user actually set onto base, leaving the
// other fields as they were. Setting a flag to "" clears that field.
func (o *FieldOptions) Overlay(cmd *cobra.Command, base record.Record) record.Record {
	values := o.Record.Fields()
	out := base.Fields()
	for i, f := range fieldFlags {
		if cmd.Flags().Changed(f.name) {
			*out[i] = *values[i]
		}
	}
	return base
}
