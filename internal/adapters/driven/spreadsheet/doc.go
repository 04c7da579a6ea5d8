// Package spreadsheet loads pesticide registration tables from the data
// folder and normalises them to the canonical 22-field schema.
//
// A lookup for crop C reads "<dir>/C<ext>" for the first configured
// extension that exists, falling back to the shared spreadsheet. Workbooks
// (.xlsx, .xlsm) are read with excelize; delimited text (.csv, .tsv) with
// encoding/csv. Every cell is trimmed and NFC-normalised so that decomposed
// Hangul in a file matches composed input typed by the user.
package spreadsheet
