package lsp

import (
	"go.lsp.dev/protocol"
)

// keyword is one entry of the static completion dictionary.
type keyword struct {
	Label         string
	Detail        string
	Documentation string
	InsertText    string
	Kind          protocol.CompletionItemKind
}

// scriptCommands are the SCRIPT-block statement commands.
var scriptCommands = []keyword{
	{"EnterMode", "SCRIPT command", "Switches the simulator mode (EDIT, RUN).", "EnterMode(RUN);", protocol.CompletionItemKindFunction},
	{"SolvePowerFlow", "SCRIPT command", "Solves the power flow using the given method (RECTNEWT, POLARNEWT, GAUSSSEIDEL, DC).", "SolvePowerFlow(RECTNEWT);", protocol.CompletionItemKindFunction},
	{"ResetToFlatStart", "SCRIPT command", "Resets the case voltages to a flat start.", "ResetToFlatStart;", protocol.CompletionItemKindFunction},
	{"OpenCase", "SCRIPT command", "Opens a case file.", "OpenCase(\"filename\");", protocol.CompletionItemKindFunction},
	{"SaveCase", "SCRIPT command", "Saves the current case in the given format.", "SaveCase(\"filename\", PWB);", protocol.CompletionItemKindFunction},
	{"CloseCase", "SCRIPT command", "Closes the current case.", "CloseCase;", protocol.CompletionItemKindFunction},
	{"NewCase", "SCRIPT command", "Starts a new empty case.", "NewCase;", protocol.CompletionItemKindFunction},
	{"LoadAux", "SCRIPT command", "Loads and processes another auxiliary file.", "LoadAux(\"filename\", YES);", protocol.CompletionItemKindFunction},
	{"LoadScript", "SCRIPT command", "Runs a named SCRIPT block from an auxiliary file.", "LoadScript(\"filename\", ScriptName);", protocol.CompletionItemKindFunction},
	{"CreateData", "SCRIPT command", "Creates an object from a field and value list.", "CreateData(BUS, [BusNum], [1]);", protocol.CompletionItemKindFunction},
	{"SetData", "SCRIPT command", "Sets fields on objects matching a filter.", "SetData(BUS, [BusNum], [1], ALL);", protocol.CompletionItemKindFunction},
	{"SaveData", "SCRIPT command", "Writes object data to an auxiliary file.", "SaveData(\"filename\", AUX, BUS, [BusNum, BusName], []);", protocol.CompletionItemKindFunction},
	{"Delete", "SCRIPT command", "Deletes objects matching a filter.", "Delete(BUS);", protocol.CompletionItemKindFunction},
	{"SelectAll", "SCRIPT command", "Sets the Selected field on matching objects.", "SelectAll(BUS);", protocol.CompletionItemKindFunction},
	{"UnSelectAll", "SCRIPT command", "Clears the Selected field on matching objects.", "UnSelectAll(BUS);", protocol.CompletionItemKindFunction},
	{"LogClear", "SCRIPT command", "Clears the message log.", "LogClear;", protocol.CompletionItemKindFunction},
	{"LogAdd", "SCRIPT command", "Appends a message to the log.", "LogAdd(\"message\");", protocol.CompletionItemKindFunction},
	{"LogSave", "SCRIPT command", "Saves the message log to a file.", "LogSave(\"filename\", YES);", protocol.CompletionItemKindFunction},
	{"WriteTextToFile", "SCRIPT command", "Writes text to a file.", "WriteTextToFile(\"filename\", \"text\");", protocol.CompletionItemKindFunction},
	{"RenameFile", "SCRIPT command", "Renames a file on disk.", "RenameFile(\"old\", \"new\");", protocol.CompletionItemKindFunction},
	{"CopyFile", "SCRIPT command", "Copies a file on disk.", "CopyFile(\"source\", \"dest\");", protocol.CompletionItemKindFunction},
	{"DeleteFile", "SCRIPT command", "Deletes a file on disk.", "DeleteFile(\"filename\");", protocol.CompletionItemKindFunction},
	{"SetCurrentDirectory", "SCRIPT command", "Changes the working directory for file commands.", "SetCurrentDirectory(\"path\");", protocol.CompletionItemKindFunction},
	{"DoCTGSolveAll", "SCRIPT command", "Solves all defined contingencies.", "DoCTGSolveAll;", protocol.CompletionItemKindFunction},
	{"TSSolve", "SCRIPT command", "Runs a transient stability solution for a contingency.", "TSSolve(\"ContingencyName\");", protocol.CompletionItemKindFunction},
}

// objectTypes are the DATA object types used in headers and commands.
var objectTypes = []keyword{
	{"BUS", "object type", "Bus records.", "BUS", protocol.CompletionItemKindClass},
	{"GEN", "object type", "Generator records.", "GEN", protocol.CompletionItemKindClass},
	{"LOAD", "object type", "Load records.", "LOAD", protocol.CompletionItemKindClass},
	{"BRANCH", "object type", "Transmission branch records.", "BRANCH", protocol.CompletionItemKindClass},
	{"SHUNT", "object type", "Switched shunt records.", "SHUNT", protocol.CompletionItemKindClass},
	{"AREA", "object type", "Area records.", "AREA", protocol.CompletionItemKindClass},
	{"ZONE", "object type", "Zone records.", "ZONE", protocol.CompletionItemKindClass},
	{"OWNER", "object type", "Owner records.", "OWNER", protocol.CompletionItemKindClass},
	{"SUBSTATION", "object type", "Substation records.", "SUBSTATION", protocol.CompletionItemKindClass},
	{"INTERFACE", "object type", "Interface records.", "INTERFACE", protocol.CompletionItemKindClass},
	{"INJECTIONGROUP", "object type", "Injection group records.", "INJECTIONGROUP", protocol.CompletionItemKindClass},
	{"CONTINGENCY", "object type", "Contingency records.", "CONTINGENCY", protocol.CompletionItemKindClass},
}

// structureKeywords open blocks and SUBDATA regions.
var structureKeywords = []keyword{
	{"SCRIPT", "block keyword", "Opens a SCRIPT block of semicolon-terminated commands.", "SCRIPT", protocol.CompletionItemKindKeyword},
	{"DATA", "block keyword", "Opens a DATA block with a bracketed field list.", "DATA (BUS, [BusNum, BusName])", protocol.CompletionItemKindKeyword},
	{"<SUBDATA>", "region tag", "Opens a free-form SUBDATA region inside a data block.", "<SUBDATA Name>", protocol.CompletionItemKindKeyword},
	{"</SUBDATA>", "region tag", "Closes a SUBDATA region.", "</SUBDATA>", protocol.CompletionItemKindKeyword},
}

// completionItems returns the full static dictionary as LSP items.
func completionItems() []protocol.CompletionItem {
	groups := [][]keyword{structureKeywords, scriptCommands, objectTypes}

	var items []protocol.CompletionItem

	for _, group := range groups {
		for _, k := range group {
			item := protocol.CompletionItem{
				Label:      k.Label,
				Kind:       k.Kind,
				Detail:     k.Detail,
				InsertText: k.InsertText,
			}

			if k.Documentation != "" {
				item.Documentation = &protocol.MarkupContent{
					Kind:  protocol.PlainText,
					Value: k.Documentation,
				}
			}

			items = append(items, item)
		}
	}

	return items
}
