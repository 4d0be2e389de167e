/*
Package config manages configuration parsing and validation for the batch rename driver.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   JSON    | |  YAML   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Reads the driver configuration (where to walk, which rule file, where to log)
- Validates required keys and fills defaults
- Resolves relative paths against the config file's directory

🔄 Flow:
1. Reads configuration from file
2. Picks a parser by file extension
3. Validates configuration values
4. Hands an immutable value to the batch operation

The JSON layout is the one the original batch tool used:

	{
	    "source_directory": "E:\\textures",
	    "config_file": "E:\\textures\\rename.csv",
	    "log_directory": "E:\\textures\\logs"
	}

Optional keys: "extension" (default ".png"), "include" and "exclude"
(doublestar patterns relative to source_directory).

🔍 Example:

	cfg, err := config.Load(ctx, afero.NewOsFs(), "rename_path_config.json")
	if err != nil {
		return err
	}
	op := operation.NewBatchOperation(opts, *cfg)
*/
package config
