/*
Package operation wires rules, intake and the rename engine into user-facing actions.

	+-------------+      +-------------+      +-------------+
	|   Intake    | ---> |  Operation  | ---> |   Engine    |
	| (candidates)|      |  (driver)   |      |  (rename)   |
	+-------------+      +------+------+      +-------------+
	                            |
	                     +------+------+
	                     | log/report  |
	                     +-------------+

🎯 Operations:
- batch: walk source_directory, apply the rule file, write a timestamped log
- interactive: apply one match/replacement rule to a working set, then clear it
- preview: show old and new names without touching the filesystem

🔄 Flow:
1. Validate rules and candidates before any filesystem mutation
2. Hand the list to the engine, which renames sequentially in list order
3. Report every outcome to the console and, for batch, to the log file
4. Summarize renamed, skipped and failed counts

🔍 Example:

	op := operation.NewBatchOperation(operation.Options{Fs: afero.NewOsFs()}, *cfg)
	err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
*/
package operation
