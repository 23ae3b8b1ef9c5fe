package cli

import (
	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/config"
	"github.com/KevinLozano-bot/arcadectl/internal/engine"
	"github.com/KevinLozano-bot/arcadectl/internal/env"
)

func parseInlineVarsAndFiles(cmd *cobra.Command) (env.Vars, []string, error) {
	rawVars := cmd.Flag("vars").Value.String()
	varFile := cmd.Flag("var-file").Value.String()

	envVars := varsEnv{}
	if err := parseEnv(&envVars); err != nil {
		return nil, nil, err
	}
	if !cmd.Flags().Changed("vars") && envPresent("ARCADECTL_VARS") {
		rawVars = envVars.Vars
	}
	if !cmd.Flags().Changed("var-file") && envPresent("ARCADECTL_VAR_FILE") {
		varFile = envVars.VarFile
	}

	inlineVars, err := env.ParseInlineVars(rawVars)
	if err != nil {
		return nil, nil, err
	}

	var varFiles []string
	if varFile != "" {
		varFiles = append(varFiles, varFile)
	}
	return inlineVars, varFiles, nil
}

func loadCatalogFromCmd(opts *Options, cmd *cobra.Command) (*config.CatalogConfig, config.TemplateContext, error) {
	inlineVars, varFiles, err := parseInlineVarsAndFiles(cmd)
	if err != nil {
		return nil, config.TemplateContext{}, err
	}

	loadOpts := config.LoadOptions{
		UserVars: inlineVars,
		VarFiles: varFiles,
	}

	cfg, ctxData, err := config.LoadCatalogConfig(opts.CatalogPath, loadOpts)
	if err != nil {
		return nil, config.TemplateContext{}, err
	}

	return cfg, ctxData, nil
}

func buildCatalogFromCmd(opts *Options, cmd *cobra.Command) (*engine.BuildResult, *config.CatalogConfig, error) {
	cfg, _, err := loadCatalogFromCmd(opts, cmd)
	if err != nil {
		return nil, nil, err
	}

	result, err := engine.NewEngine().BuildCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	return result, cfg, nil
}
