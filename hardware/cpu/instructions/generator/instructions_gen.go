//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nescore/nescore/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 6502.\n" +
	"// Undefined opcodes are nil.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "\n}\n}\n"

// addressing modes as named in the CSV file
var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

// effect categories as named in the CSV file
var effects = map[string]instructions.EffectCategory{
	"READ":        instructions.Read,
	"WRITE":       instructions.Write,
	"RMW":         instructions.RMW,
	"FLOW":        instructions.Flow,
	"SUB-ROUTINE": instructions.Subroutine,
	"INTERRUPT":   instructions.Interrupt,
}

func parseCSV() (map[uint8]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(rec[0], 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: mnemonic
		newDef.Operator, err = instructions.ParseOperator(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w [line %d]", err, line)
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an instruction requires
		am, ok := addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		}
		newDef.AddressingMode = am
		newDef.Bytes = 1 + am.OperandBytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			newDef.PageSensitive = true
		case "FALSE":
			newDef.PageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		}

		// field: effect category
		newDef.Effect = instructions.Read
		if len(rec) == 6 {
			newDef.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			}
		}

		deftable[newDef.OpCode] = newDef
	}

	return deftable, nil
}

// operatorIdentifier converts a mnemonic to the name of the Operator constant.
func operatorIdentifier(o instructions.Operator) string {
	s := o.String()
	return s[:1] + strings.ToLower(s[1:])
}

func generate(deftable map[uint8]instructions.Definition) string {
	var output strings.Builder
	output.WriteString(leadingBoilerPlate)

	for opcode := 0; opcode < 256; opcode++ {
		defn, ok := deftable[uint8(opcode)]
		if !ok {
			output.WriteString("\nnil,")
			continue
		}
		fmt.Fprintf(&output, "\n&Definition{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},",
			defn.OpCode, operatorIdentifier(defn.Operator), defn.Bytes, defn.Cycles,
			defn.AddressingMode, defn.PageSensitive, defn.Effect)
	}

	output.WriteString(trailingBoilerPlate)
	return output.String()
}

func printSummary(deftable map[uint8]instructions.Definition) {
	missing := make([]int, 0, 256)
	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			missing = append(missing, i)
		}
	}

	if len(missing) == 0 {
		return
	}

	fmt.Println("6502 implementation / undefined opcodes")
	fmt.Println("---------------------------------------")

	// print and columnise missing instructions
	c := 0
	for _, m := range missing {
		fmt.Printf("%#02x\t", m)
		c++
		if c > 7 {
			c = 0
			fmt.Printf("\n")
		}
	}
	if c != 0 {
		fmt.Printf("\n")
	}

	fmt.Printf("%d undefined, %d defined\n", len(missing), 256-len(missing))
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	printSummary(deftable)

	formattedOutput, err := format.Source([]byte(generate(deftable)))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
