package docs

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/help"
	"github.com/tenderlove/yazap/pkg/logging"
)

// DocBook renders cmd as a DocBook 5 refentry document, the input format
// man-page toolchains consume. Subcommands become refsect1 sections titled
// by their command path.
func DocBook(cmd *command.Command) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	refentry := doc.CreateElement("refentry")
	refentry.CreateAttr("xmlns", "http://docbook.org/ns/docbook")
	refentry.CreateAttr("version", "5.0")
	refentry.CreateAttr("xml:id", cmd.Name)

	refmeta := refentry.CreateElement("refmeta")
	refmeta.CreateElement("refentrytitle").SetText(cmd.Name)
	refmeta.CreateElement("manvolnum").SetText("1")

	refnamediv := refentry.CreateElement("refnamediv")
	refnamediv.CreateElement("refname").SetText(cmd.Name)
	refnamediv.CreateElement("refpurpose").SetText(cmd.Description)

	synopsis := refentry.CreateElement("refsynopsisdiv")
	writeSynopsis(synopsis, cmd)

	writeRefSections(refentry, cmd, "refsect1")
	for _, sub := range cmd.Subcommands {
		writeSubcommandSection(refentry, sub, []string{cmd.Name})
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDocGenerate,
			"serializing docbook for %s", cmd.Name)
	}
	logger := logging.GetLogger("docs")
	logger.Debug().Str("command", cmd.Name).Int("bytes", len(out)).Msg("docbook generated")
	return out, nil
}

func writeSynopsis(parent *etree.Element, cmd *command.Command) {
	syn := parent.CreateElement("cmdsynopsis")
	syn.CreateElement("command").SetText(cmd.Name)
	for _, arg := range cmd.PositionalArgs {
		el := syn.CreateElement("arg")
		if cmd.PositionalArgRequired {
			el.CreateAttr("choice", "req")
		} else {
			el.CreateAttr("choice", "opt")
		}
		if arg.TakesMultipleValues {
			el.CreateAttr("rep", "repeat")
		}
		el.SetText(arg.Name)
	}
	if cmd.CountOptions() > 0 {
		el := syn.CreateElement("arg")
		el.CreateAttr("choice", "opt")
		el.SetText("OPTIONS")
	}
	if cmd.CountSubcommands() > 0 {
		el := syn.CreateElement("arg")
		if cmd.SubcommandRequired {
			el.CreateAttr("choice", "req")
		} else {
			el.CreateAttr("choice", "opt")
		}
		el.SetText("COMMAND")
	}
}

// writeRefSections emits the argument and option lists for one command.
// sectName picks the section depth: refsect1 at the document root, refsect2
// inside a subcommand's section.
func writeRefSections(parent *etree.Element, cmd *command.Command, sectName string) {
	if cmd.CountPositionalArgs() > 0 {
		sect := createSection(parent, sectName, "Arguments")
		list := sect.CreateElement("variablelist")
		for _, arg := range cmd.PositionalArgs {
			token := arg.Name
			if arg.TakesMultipleValues {
				token += "..."
			}
			writeVarEntry(list, token, arg.Description)
		}
	}

	if cmd.CountOptions() > 0 {
		sect := createSection(parent, sectName, "Options")
		list := sect.CreateElement("variablelist")
		for _, opt := range cmd.Options {
			writeVarEntry(list, help.OptionSignature(opt), optionDescription(opt))
		}
		helpOpt := help.HelpOption()
		writeVarEntry(list, help.OptionSignature(helpOpt), helpOpt.Description)
	}
}

// writeSubcommandSection emits one refsect1 per subcommand, recursing so
// nested commands land as sibling sections titled by their full path.
func writeSubcommandSection(parent *etree.Element, cmd *command.Command, path []string) {
	title := strings.Join(append(append([]string{}, path...), cmd.Name), " ")
	sect := createSection(parent, "refsect1", title)
	if cmd.Description != "" {
		sect.CreateElement("para").SetText(cmd.Description)
	}
	sect.CreateElement("synopsis").SetText(help.UsageLine(cmd))
	writeRefSections(sect, cmd, "refsect2")
	for _, sub := range cmd.Subcommands {
		writeSubcommandSection(parent, sub, append(path, cmd.Name))
	}
}

func createSection(parent *etree.Element, name, title string) *etree.Element {
	sect := parent.CreateElement(name)
	sect.CreateElement("title").SetText(title)
	return sect
}

func writeVarEntry(list *etree.Element, term, description string) {
	entry := list.CreateElement("varlistentry")
	entry.CreateElement("term").SetText(term)
	item := entry.CreateElement("listitem")
	item.CreateElement("para").SetText(description)
}
