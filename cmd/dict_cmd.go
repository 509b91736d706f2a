package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dzjyyds666/dcf/parse/dictionary"
	"github.com/dzjyyds666/dcf/pkg"
	"github.com/spf13/cobra"
)

type DictParams struct {
	Input   string   `json:"input"`   // 输入文件路径
	Output  string   `json:"output"`  // 输出文件地址
	Record  string   `json:"record"`  // 记录名
	Columns []string `json:"columns"` // 需要的列
}

var dictParams = &DictParams{}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "print the parsed dictionary tree",
	RunE:  treeRun,
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "print the column labels of a record",
	RunE:  labelsRun,
}

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "print the value labels of a record",
	RunE:  valuesRun,
}

func init() {
	for _, c := range []*cobra.Command{treeCmd, labelsCmd, valuesCmd} {
		c.Flags().StringVarP(&dictParams.Input, "input", "i", "", "input file path")
		c.Flags().StringVarP(&dictParams.Output, "output", "o", "", "output path")
	}
	for _, c := range []*cobra.Command{labelsCmd, valuesCmd} {
		c.Flags().StringVarP(&dictParams.Record, "record", "r", "", "record name")
	}
	valuesCmd.Flags().StringSliceVarP(&dictParams.Columns, "columns", "c", nil, "only these items")
}

func treeRun(cmd *cobra.Command, args []string) error {
	tree, err := loadTree()
	if err != nil {
		return err
	}
	return output(cmd, tree)
}

func labelsRun(cmd *cobra.Command, args []string) error {
	record, err := recordName()
	if err != nil {
		return err
	}
	tree, err := loadTree()
	if err != nil {
		return err
	}
	labels, ok := tree.ColumnLabels(record)
	if !ok {
		return fmt.Errorf("record %q not found", record)
	}
	return output(cmd, labels)
}

func valuesRun(cmd *cobra.Command, args []string) error {
	record, err := recordName()
	if err != nil {
		return err
	}
	tree, err := loadTree()
	if err != nil {
		return err
	}
	columns := dictParams.Columns
	if len(columns) == 0 && len(settings.Columns) > 0 {
		columns = settings.Columns
	}
	vl, ok := tree.ValueLabels(record, columns)
	if !ok {
		return fmt.Errorf("record %q not found", record)
	}
	return output(cmd, vl)
}

func recordName() (string, error) {
	if dictParams.Record != "" {
		return dictParams.Record, nil
	}
	if settings.Record != "" {
		return settings.Record, nil
	}
	return "", errors.New("no record name")
}

func loadTree() (*dictionary.Tree, error) {
	if len(dictParams.Input) == 0 {
		return nil, errors.New("no input file path")
	}
	exist, err := pkg.CheckFileExist(dictParams.Input)
	if err != nil {
		return nil, fmt.Errorf("check file exist error: %w", err)
	}
	if !exist {
		return nil, errors.New("input file not exist")
	}
	text, err := pkg.ReadText(dictParams.Input)
	if err != nil {
		return nil, err
	}
	tree, err := dictionary.NewParser().WithLogger(logger).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dictParams.Input, err)
	}
	return tree, nil
}

func output(cmd *cobra.Command, v any) error {
	var w io.Writer = cmd.OutOrStdout()
	if dictParams.Output != "" {
		f, err := os.Create(dictParams.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return render(w, settings.Format, v)
}
